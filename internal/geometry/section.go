package geometry

import (
	"gonum.org/v1/gonum/floats"

	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Section is one spanwise station of a lifting surface: an ordered,
// closed planar-ish curve in a chordwise plane. Points follow Selig
// order, trailing edge first and last, upper surface before lower.
// Immutable once built.
type Section struct {
	Span   float64
	Points []geom.Vec3

	TESize float64 // target mesh size at the trailing edge
	LESize float64 // target mesh size at the leading edge
}

// TEGap returns the distance between the two trailing-edge points.
func (s *Section) TEGap() float64 {
	return s.Points[0].Distance(s.Points[len(s.Points)-1])
}

// TEMid returns the midpoint of the trailing edge.
func (s *Section) TEMid() geom.Vec3 {
	return geom.Mid(s.Points[0], s.Points[len(s.Points)-1])
}

// LeadingEdgeIndex returns the index of the minimum-x point.
func (s *Section) LeadingEdgeIndex() int {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return floats.MinIdx(xs)
}

// Chord returns the x-extent of the section.
func (s *Section) Chord() float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return floats.Max(xs) - floats.Min(xs)
}

// chordwise projects the section onto its chordwise plane.
func (s *Section) chordwise() []geom.Vec2 {
	pts := make([]geom.Vec2, len(s.Points))
	for i, p := range s.Points {
		pts[i] = p.XZ()
	}
	return pts
}

// selfIntersects reports whether any two non-adjacent segments of the
// closed section polygon cross in the chordwise plane.
func (s *Section) selfIntersects() bool {
	pts := s.chordwise()
	n := len(pts)
	segs := make([][2]geom.Vec2, 0, n)
	for i := 0; i+1 < n; i++ {
		segs = append(segs, [2]geom.Vec2{pts[i], pts[i+1]})
	}
	// Closing edge across the trailing edge; degenerate for welded
	// sharp sections.
	if pts[n-1] != pts[0] {
		segs = append(segs, [2]geom.Vec2{pts[n-1], pts[0]})
	}
	m := len(segs)
	for i := 0; i < m; i++ {
		for j := i + 2; j < m; j++ {
			if i == 0 && j == m-1 {
				continue // adjacent through the loop closure
			}
			if geom.SegmentsIntersect(segs[i][0], segs[i][1], segs[j][0], segs[j][1]) {
				return true
			}
		}
	}
	return false
}

// planarDeviation returns the largest deviation of a point's span
// coordinate from the section's station.
func (s *Section) planarDeviation() float64 {
	max := 0.0
	for _, p := range s.Points {
		d := p.Y - s.Span
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}
