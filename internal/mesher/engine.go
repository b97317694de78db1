// Package mesher drives the external meshing engine: it emits the
// resolved domain as engine primitives, attaches the composed size
// field, triggers generation and tags the result for the solver.
package mesher

import (
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Builder is the geometry construction surface of the meshing engine.
// Identifiers are engine-assigned and opaque; curve identifiers may be
// negated inside a loop to reverse orientation, as the engine expects.
type Builder interface {
	// AddPoint registers a point with a target mesh size. A size of
	// zero leaves the point unconstrained (the size field governs).
	AddPoint(p geom.Vec3, size float64) int
	AddLine(a, b int) int
	// AddCircleArc spans from a to b on the circle centered at c.
	AddCircleArc(a, c, b int) int
	AddCurveLoop(curves []int) int
	AddPlaneSurface(loop int) int
	// AddSurfaceFilling builds a non-planar patch bounded by the loop.
	AddSurfaceFilling(loop int) int
	AddSurfaceLoop(surfaces []int) int
	// AddVolume encloses the first shell, subtracting the rest as
	// cavities.
	AddVolume(shells ...int) int
	// Embed forces the surface into the volume mesh without bounding
	// it, used for zero-thickness wake sheets.
	Embed(surface, volume int)
	AddPhysicalGroup(dim int, name string, entities []int) int
}

// Engine extends Builder with size-field attachment and the meshing
// call itself.
type Engine interface {
	Builder
	SetSizeField(eval func(p geom.Vec3) float64)
	Generate(opts Options) (*Mesh, error)
}

// Options carry the generation knobs passed through to the engine.
type Options struct {
	Algorithm2D int
	Algorithm3D int
	Smoothing   int
	Optimize    bool
}

// Element is one generated mesh element with its engine id, vertex
// references and the engine-reported quality measure in [0,1].
type Element struct {
	ID      int
	Verts   []int
	Quality float64
}

// Mesh is the engine's generated result: the volume elements plus the
// boundary elements grouped by the geometric surface they discretize.
type Mesh struct {
	Elements []Element
	Boundary map[int][]Element
}
