package geometry

import (
	"go.uber.org/multierr"

	"github.com/acrovato/gmshcfd/pkg/geom"
)

// TEClass classifies the trailing edge of a surface.
type TEClass int

const (
	// TESharp means the trailing-edge gap is within tolerance at every
	// section and the boundary closes into a zero-thickness seam.
	TESharp TEClass = iota
	// TEBlunt means at least one section has a finite-thickness trailing
	// edge requiring an explicit closing face.
	TEBlunt
)

func (c TEClass) String() string {
	if c == TEBlunt {
		return "blunt"
	}
	return "sharp"
}

// Surface is a lifting surface: ordered spanwise sections plus the
// trailing-edge classification tolerance. Built once at geometry time,
// never mutated afterwards.
type Surface struct {
	Name     string
	Sections []Section
	// TETolerance is the absolute trailing-edge gap above which the
	// surface is classified blunt.
	TETolerance float64
}

// Class classifies the trailing edge. A surface is blunt as soon as any
// section's gap exceeds the tolerance, so one surface never mixes sharp
// and blunt topology along the span.
func (s *Surface) Class() TEClass {
	for i := range s.Sections {
		if s.Sections[i].TEGap() > s.TETolerance {
			return TEBlunt
		}
	}
	return TESharp
}

// GapProfile returns the trailing-edge gap at each section.
func (s *Surface) GapProfile() []float64 {
	gaps := make([]float64, len(s.Sections))
	for i := range s.Sections {
		gaps[i] = s.Sections[i].TEGap()
	}
	return gaps
}

// RootChord returns the chord of the first section.
func (s *Surface) RootChord() float64 {
	return s.Sections[0].Chord()
}

// BBox returns the bounding box over all section points.
func (s *Surface) BBox() geom.BBox {
	b := geom.EmptyBBox()
	for i := range s.Sections {
		for _, p := range s.Sections[i].Points {
			b.Extend(p)
		}
	}
	return b
}

// Validate checks the surface for loftability. All findings are
// reported at once.
func (s *Surface) Validate() error {
	var err error

	if len(s.Sections) < 2 {
		return errf(s.Name, -1, "needs at least 2 sections, has %d", len(s.Sections))
	}

	// Lofting interpolates between sections point by point, so point
	// counts must match across the span.
	n := len(s.Sections[0].Points)
	for i := range s.Sections {
		sec := &s.Sections[i]
		if len(sec.Points) < 4 {
			err = multierr.Append(err, errf(s.Name, i, "needs at least 4 points, has %d", len(sec.Points)))
			continue
		}
		if len(sec.Points) != n {
			err = multierr.Append(err, errf(s.Name, i,
				"point count %d does not match section 0 (%d)", len(sec.Points), n))
		}
		if dev := sec.planarDeviation(); dev > 1e-6*sec.Chord() {
			err = multierr.Append(err, errf(s.Name, i, "section is not planar (span deviation %g)", dev))
		}
		if sec.selfIntersects() {
			err = multierr.Append(err, errf(s.Name, i, "section polygon self-intersects"))
		}
	}

	for i := 1; i < len(s.Sections); i++ {
		if s.Sections[i].Span <= s.Sections[i-1].Span {
			err = multierr.Append(err, errf(s.Name, i,
				"span %g is not strictly increasing (previous %g)",
				s.Sections[i].Span, s.Sections[i-1].Span))
		}
	}

	return err
}
