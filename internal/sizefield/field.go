package sizefield

import (
	"sort"

	"go.uber.org/zap"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/internal/domain"
	"github.com/acrovato/gmshcfd/internal/logger"
	"github.com/acrovato/gmshcfd/internal/topology"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Field is the composed size field: the minimum over all contributing
// specifications and the farfield background. Pure and deterministic;
// safe to evaluate from the meshing engine callback.
type Field struct {
	Specs      []*GrowthSpec
	Background float64
}

// Eval returns the target mesh edge length at p: the finest of all
// contributions, the background far from every body.
func (f *Field) Eval(p geom.Vec3) float64 {
	size := f.Background
	for _, s := range f.Specs {
		if v := s.Eval(p); v < size {
			size = v
		}
	}
	return size
}

// Build assembles the field for a domain: one wall spec per surface, a
// wake spec per wake sheet, an optional boundary-layer band, and the
// farfield background. The result is validated for growth continuity.
func Build(d *domain.Domain, topos []*topology.Topology, cfg *config.Config) (*Field, error) {
	mesh := &cfg.Mesh
	farSize := mesh.FarfieldSize
	if farSize == 0 {
		// Cap the derived background with the geometric growth law over
		// the standoff distance, so a generous ring count cannot push
		// the farfield size past what continuous growth would reach.
		ringSize := ringLimit(mesh.MinSize, mesh.GrowthRatio, mesh.Rings)
		lawSize := FarfieldSize(mesh.MinSize, d.Farfield.Radius, mesh.GrowthRatio)
		farSize = min(ringSize, lawSize)
	}

	f := &Field{Background: farSize}
	for _, t := range topos {
		f.Specs = append(f.Specs, &GrowthSpec{
			Label:   "wall:" + t.Surface,
			MinSize: mesh.MinSize,
			Ratio:   mesh.GrowthRatio,
			Rings:   mesh.Rings,
			FarSize: farSize,
			Lines:   t.SectionPolylines(),
		})
		if bl := mesh.BoundaryLayer; bl != nil {
			f.Specs = append(f.Specs, &GrowthSpec{
				Label:   "bl:" + t.Surface,
				MinSize: bl.FirstLayerHeight,
				Ratio:   bl.GrowthRatio,
				Rings:   bl.NumLayers,
				FarSize: mesh.MinSize,
				Lines:   t.SectionPolylines(),
			})
		}
	}
	for _, w := range d.Wakes {
		lines := make([][]geom.Vec3, 0, len(w.Curve))
		for _, seg := range topology.ExtendWake(w.Curve, w.Length) {
			lines = append(lines, []geom.Vec3{seg[0], seg[1]})
		}
		f.Specs = append(f.Specs, &GrowthSpec{
			Label:   "wake:" + w.Surface,
			MinSize: mesh.MinSize,
			Ratio:   mesh.GrowthRatio,
			Rings:   mesh.Rings,
			FarSize: farSize,
			Lines:   lines,
		})
	}

	if err := f.Validate(mesh.MaxGrowthRatio); err != nil {
		return nil, err
	}
	logger.Info("size field composed",
		zap.Int("specs", len(f.Specs)),
		zap.Float64("background", f.Background))
	return f, nil
}

// Validate samples the composed field along an outward probe ray from
// every spec's anchor and rejects any adjacent growth exceeding the
// configured maximum. Sampling at the merged ring boundaries of all
// specs keeps one ring transition per sample, so a violation always
// reflects a genuine discontinuity and not a coarse sampling stride.
func (f *Field) Validate(maxGrowth float64) error {
	const slack = 1e-9
	edges := f.sampleEdges()
	for _, s := range f.Specs {
		anchor := s.ProbeAnchor()
		prev := f.Eval(anchor)
		for _, d := range edges {
			cur := f.Eval(anchor.Add(geom.Vec3{Z: d * (1 + 1e-9)}))
			if prev > 0 && cur/prev > maxGrowth+slack {
				return &Error{
					Spec: s.Label,
					Msg:  "growth " + formatRatio(cur/prev) + " between adjacent rings exceeds the configured maximum " + formatRatio(maxGrowth),
				}
			}
			prev = cur
		}
	}
	return nil
}

// sampleEdges merges the ring boundaries of every spec into one sorted
// probe schedule.
func (f *Field) sampleEdges() []float64 {
	var edges []float64
	for _, s := range f.Specs {
		edges = append(edges, s.RingBoundaries()...)
	}
	sort.Float64s(edges)
	return edges
}

// ringLimit is the size reached after growing ring by ring from h.
func ringLimit(h, r float64, rings int) float64 {
	size := h
	for i := 0; i < rings; i++ {
		size *= r
	}
	return size
}
