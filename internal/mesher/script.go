package mesher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Script is a Builder that records the emitted geometry as a gmsh .geo
// script instead of driving an engine, so a run can be inspected or
// meshed offline.
type Script struct {
	opts Options
	buf  strings.Builder
	next int
}

func NewScript(opts Options) *Script {
	return &Script{opts: opts, next: 1}
}

func (s *Script) id() int {
	id := s.next
	s.next++
	return id
}

func (s *Script) linef(format string, args ...any) {
	fmt.Fprintf(&s.buf, format+"\n", args...)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func ints(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func (s *Script) AddPoint(p geom.Vec3, size float64) int {
	id := s.id()
	if size > 0 {
		s.linef("Point(%d) = {%s, %s, %s, %s};", id, num(p.X), num(p.Y), num(p.Z), num(size))
	} else {
		s.linef("Point(%d) = {%s, %s, %s};", id, num(p.X), num(p.Y), num(p.Z))
	}
	return id
}

func (s *Script) AddLine(a, b int) int {
	id := s.id()
	s.linef("Line(%d) = {%d, %d};", id, a, b)
	return id
}

func (s *Script) AddCircleArc(a, c, b int) int {
	id := s.id()
	s.linef("Circle(%d) = {%d, %d, %d};", id, a, c, b)
	return id
}

func (s *Script) AddCurveLoop(curves []int) int {
	id := s.id()
	s.linef("Curve Loop(%d) = {%s};", id, ints(curves))
	return id
}

func (s *Script) AddPlaneSurface(loop int) int {
	id := s.id()
	s.linef("Plane Surface(%d) = {%d};", id, loop)
	return id
}

func (s *Script) AddSurfaceFilling(loop int) int {
	id := s.id()
	s.linef("Surface(%d) = {%d};", id, loop)
	return id
}

func (s *Script) AddSurfaceLoop(surfaces []int) int {
	id := s.id()
	s.linef("Surface Loop(%d) = {%s};", id, ints(surfaces))
	return id
}

func (s *Script) AddVolume(shells ...int) int {
	id := s.id()
	s.linef("Volume(%d) = {%s};", id, ints(shells))
	return id
}

func (s *Script) Embed(surface, volume int) {
	s.linef("Surface{%d} In Volume{%d};", surface, volume)
}

func (s *Script) AddPhysicalGroup(dim int, name string, entities []int) int {
	id := s.id()
	kind := "Surface"
	if dim == 3 {
		kind = "Volume"
	}
	s.linef("Physical %s(%q) = {%s};", kind, name, ints(entities))
	return id
}

// Bytes returns the complete script, geometry first, generation
// options last.
func (s *Script) Bytes() []byte {
	var out strings.Builder
	out.WriteString(s.buf.String())
	fmt.Fprintf(&out, "Mesh.Algorithm = %d;\n", s.opts.Algorithm2D)
	fmt.Fprintf(&out, "Mesh.Algorithm3D = %d;\n", s.opts.Algorithm3D)
	fmt.Fprintf(&out, "Mesh.Smoothing = %d;\n", s.opts.Smoothing)
	if s.opts.Optimize {
		out.WriteString("Mesh.Optimize = 1;\n")
	}
	return []byte(out.String())
}
