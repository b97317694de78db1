// Package geometry builds and validates lifting-surface definitions and
// classifies their trailing edges.
package geometry

import (
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/internal/logger"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Model holds the validated lifting surfaces of one run.
type Model struct {
	Surfaces []*Surface
}

// Build constructs the geometry model from configuration: planform
// expansion, Selig-order normalization, placement transforms and
// validation. Classification happens lazily through Surface.Class.
func Build(cfg *config.Config) (*Model, error) {
	m := &Model{}
	var err error
	for i := range cfg.Surfaces {
		surf, serr := buildSurface(&cfg.Surfaces[i])
		if serr != nil {
			err = multierr.Append(err, serr)
			continue
		}
		m.Surfaces = append(m.Surfaces, surf)
		logger.Debug("surface built",
			zap.String("surface", surf.Name),
			zap.Int("sections", len(surf.Sections)),
			zap.String("trailing_edge", surf.Class().String()))
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func buildSurface(sc *config.SurfaceConfig) (*Surface, error) {
	sections := sc.Sections
	if sc.Planform != nil {
		sections = expandPlanform(sc.Planform)
	}

	surf := &Surface{Name: sc.Name}
	for i := range sections {
		raw, err := normalizeSelig(sc.Name, i, sections[i].Points)
		if err != nil {
			return nil, err
		}
		pts := transformSection(raw, sections[i].Chord, sections[i].IncidenceDeg, sections[i].LEOffset)
		surf.Sections = append(surf.Sections, Section{
			Span:   sections[i].LEOffset[1],
			Points: pts,
			TESize: sections[i].TESize,
			LESize: sections[i].LESize,
		})
	}
	if len(surf.Sections) == 0 {
		return nil, errf(sc.Name, -1, "needs at least 2 sections, has 0")
	}
	surf.TETolerance = sc.TEThicknessTol * surf.RootChord()

	if err := surf.Validate(); err != nil {
		return nil, err
	}
	return surf, nil
}

// normalizeSelig checks that airfoil coordinates follow Selig order
// (trailing edge first and last, x-coordinate at the chord maximum) and
// flips them when the lower surface comes first.
func normalizeSelig(surface string, section int, raw [][3]float64) ([][3]float64, error) {
	if len(raw) < 4 {
		return nil, errf(surface, section, "needs at least 4 points, has %d", len(raw))
	}
	maxX := raw[0][0]
	for _, p := range raw {
		if p[0] > maxX {
			maxX = p[0]
		}
	}
	const tol = 1e-9
	if math.Abs(raw[0][0]-maxX) > tol || math.Abs(raw[len(raw)-1][0]-maxX) > tol {
		return nil, errf(surface, section,
			"points must be in Selig order: trailing edge first and last at the chord maximum")
	}
	// Upper surface must come first; flip when the second point sits
	// below the second-to-last.
	if raw[1][2] < raw[len(raw)-2][2] {
		flipped := make([][3]float64, len(raw))
		for i := range raw {
			flipped[i] = raw[len(raw)-1-i]
		}
		raw = flipped
	}
	return raw, nil
}

// BBox returns the bounding box over all surfaces.
func (m *Model) BBox() geom.BBox {
	b := geom.EmptyBBox()
	for _, s := range m.Surfaces {
		b = b.Union(s.BBox())
	}
	return b
}

// RefChord returns the characteristic chord used to scale the farfield:
// the largest root chord of any surface.
func (m *Model) RefChord() float64 {
	ref := 0.0
	for _, s := range m.Surfaces {
		if c := s.RootChord(); c > ref {
			ref = c
		}
	}
	return ref
}
