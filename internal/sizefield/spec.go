// Package sizefield computes the scalar mesh-size field over the
// domain: geometric growth away from each wall and wake, composed by
// taking the minimum contribution everywhere.
package sizefield

import (
	"math"

	"github.com/acrovato/gmshcfd/pkg/geom"
)

// GrowthSpec is one radially-graded size specification: MinSize at the
// anchor geometry, growing geometrically ring by ring until FarSize.
type GrowthSpec struct {
	Label   string // wall:<surface>, wake:<surface> or bl:<surface>
	MinSize float64
	Ratio   float64
	Rings   int
	FarSize float64

	// Lines anchor the spec: distance to the nearest polyline drives
	// the ring index.
	Lines [][]geom.Vec3
}

// Distance returns the distance from p to the anchor geometry.
func (s *GrowthSpec) Distance(p geom.Vec3) float64 {
	min := math.Inf(1)
	for _, l := range s.Lines {
		if d := geom.PolylineDistance(p, l); d < min {
			min = d
		}
	}
	return min
}

// Eval returns the spec's target size at p: MinSize inside the first
// ring, multiplied by Ratio per ring, clamped at FarSize beyond the
// configured ring count.
func (s *GrowthSpec) Eval(p geom.Vec3) float64 {
	return s.sizeAt(s.Distance(p))
}

func (s *GrowthSpec) sizeAt(d float64) float64 {
	size := s.MinSize
	edge := s.MinSize // outer boundary of the current ring
	for k := 0; k < s.Rings; k++ {
		if d < edge {
			if size > s.FarSize {
				return s.FarSize
			}
			return size
		}
		size *= s.Ratio
		edge += s.MinSize * math.Pow(s.Ratio, float64(k+1))
	}
	// Past the last ring the spec stops constraining; the background
	// (or another spec) governs.
	return s.FarSize
}

// RingBoundaries returns the cumulative outer distance of each ring,
// used for continuity sampling.
func (s *GrowthSpec) RingBoundaries() []float64 {
	edges := make([]float64, 0, s.Rings+1)
	edge := 0.0
	for k := 0; k <= s.Rings; k++ {
		edge += s.MinSize * math.Pow(s.Ratio, float64(k))
		edges = append(edges, edge)
	}
	return edges
}

// ProbeAnchor returns the highest point of the anchor geometry; probing
// straight up from it gives ray distances equal to wall distances.
func (s *GrowthSpec) ProbeAnchor() geom.Vec3 {
	top := s.Lines[0][0]
	for _, l := range s.Lines {
		for _, p := range l {
			if p.Z > top.Z {
				top = p
			}
		}
	}
	return top
}
