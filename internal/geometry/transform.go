package geometry

import (
	"math"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// transformSection places normalized airfoil coordinates in space: scale
// by chord, rotate about the quarter chord by the incidence angle, then
// translate to the leading-edge offset.
func transformSection(raw [][3]float64, chord, incidenceDeg float64, leOffset [3]float64) []geom.Vec3 {
	sin, cos := math.Sincos(incidenceDeg * math.Pi / 180)
	qc := chord / 4
	pts := make([]geom.Vec3, len(raw))
	for i, r := range raw {
		x := r[0] * chord
		z := r[2] * chord
		// Positive incidence pitches the leading edge up.
		rx := qc + (x-qc)*cos + z*sin
		rz := -(x-qc)*sin + z*cos
		pts[i] = geom.Vec3{
			X: rx + leOffset[0],
			Y: r[1] + leOffset[1],
			Z: rz + leOffset[2],
		}
	}
	return pts
}

// expandPlanform generates section configs from a planform description:
// one station per segment boundary, each reusing the root airfoil with
// the chord and leading-edge offset implied by span, taper, sweep and
// dihedral.
func expandPlanform(p *config.PlanformConfig) []config.SectionConfig {
	n := len(p.Spans)
	sections := make([]config.SectionConfig, 0, n+1)
	le := [3]float64{0, 0, 0}
	chord := p.RootChord
	sections = append(sections, config.SectionConfig{
		Points: p.RootPoints,
		Chord:  chord,
	})
	for i := 0; i < n; i++ {
		le[0] += math.Tan(p.SweepsDeg[i]*math.Pi/180) * p.Spans[i]
		le[1] += p.Spans[i]
		le[2] += math.Tan(p.DihedralsDeg[i]*math.Pi/180) * p.Spans[i]
		chord *= p.Tapers[i]
		sections = append(sections, config.SectionConfig{
			Points:   p.RootPoints,
			Chord:    chord,
			LEOffset: le,
		})
	}
	return sections
}
