// Package topology resolves the trailing edge of each lifting surface
// into a closed, watertight boundary shell.
package topology

import (
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Kind tags the resolved trailing-edge variant.
type Kind int

const (
	// Sharp closes the boundary with a zero-thickness seam.
	Sharp Kind = iota
	// Blunt closes the boundary with explicit trailing-edge cap faces
	// and defines a wake-separation curve.
	Blunt
)

func (k Kind) String() string {
	if k == Blunt {
		return "blunt"
	}
	return "sharp"
}

// Face is one face of the boundary shell, as ordered vertex indices.
type Face struct {
	Verts []int
}

// Topology is the resolved closed boundary of one surface. The shell is
// discrete: section points joined into loft quads plus end and
// trailing-edge closure faces. Invariant (checked on construction):
// every edge bounds exactly two faces.
type Topology struct {
	Surface string
	Kind    Kind

	Points     []geom.Vec3
	PointSizes []float64 // target mesh size per point, 0 = unconstrained
	Faces      []Face

	NumSections int // spanwise stations in the shell
	LoopLen     int // points per station loop

	Loft []int // face indices: spanwise loft faces
	Caps []int // face indices: trailing-edge closing faces (blunt only)
	Ends []int // face indices: root and tip closure faces

	Seam      []geom.Vec3 // sharp: seam curve, one point per section
	WakeCurve []geom.Vec3 // blunt: trailing-edge midpoint locus
	LECurve   []geom.Vec3 // leading-edge locus
}

// SectionPolylines returns each station's closed loop as a polyline,
// first point repeated at the end.
func (t *Topology) SectionPolylines() [][]geom.Vec3 {
	lines := make([][]geom.Vec3, t.NumSections)
	for i := 0; i < t.NumSections; i++ {
		loop := make([]geom.Vec3, 0, t.LoopLen+1)
		loop = append(loop, t.Points[i*t.LoopLen:(i+1)*t.LoopLen]...)
		loop = append(loop, t.Points[i*t.LoopLen])
		lines[i] = loop
	}
	return lines
}

// BBox returns the bounding box of the shell.
func (t *Topology) BBox() geom.BBox {
	b := geom.EmptyBBox()
	for _, p := range t.Points {
		b.Extend(p)
	}
	return b
}

type edgeKey struct{ a, b int }

func edge(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// CheckManifold verifies that every edge of the shell bounds exactly two
// faces, i.e. the boundary is a closed 2-manifold with no duplicate or
// dangling edges.
func (t *Topology) CheckManifold() error {
	uses := make(map[edgeKey]int)
	for _, f := range t.Faces {
		n := len(f.Verts)
		for i := 0; i < n; i++ {
			uses[edge(f.Verts[i], f.Verts[(i+1)%n])]++
		}
	}
	for e, n := range uses {
		if n != 2 {
			return errf(t.Surface, -1, "edge %d-%d bounds %d faces, want 2", e.a, e.b, n)
		}
	}
	return nil
}
