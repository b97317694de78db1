package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks that the configuration is internally consistent.
// All findings are reported at once.
func (c *Config) Validate() error {
	var err error

	if c.Name == "" {
		err = multierr.Append(err, fmt.Errorf("name must not be empty"))
	}
	if len(c.Surfaces) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one surface is required"))
	}
	seen := make(map[string]bool)
	for i, s := range c.Surfaces {
		if s.Name == "" {
			err = multierr.Append(err, fmt.Errorf("surface %d: name must not be empty", i))
		}
		if seen[s.Name] {
			err = multierr.Append(err, fmt.Errorf("surface %q: duplicate name", s.Name))
		}
		seen[s.Name] = true
		if len(s.Sections) == 0 && s.Planform == nil {
			err = multierr.Append(err, fmt.Errorf("surface %q: needs sections or a planform", s.Name))
		}
		if s.Planform != nil {
			err = multierr.Append(err, s.Planform.validate(s.Name))
		}
		if s.TEThicknessTol < 0 {
			err = multierr.Append(err, fmt.Errorf("surface %q: te_thickness_tol must be >= 0", s.Name))
		}
	}

	switch c.Domain.Shape {
	case "box", "sphere":
	default:
		err = multierr.Append(err, fmt.Errorf("domain shape %q: must be box or sphere", c.Domain.Shape))
	}
	if c.Domain.StandoffFactor < 1 {
		err = multierr.Append(err, fmt.Errorf("standoff_factor %g: must be >= 1", c.Domain.StandoffFactor))
	}
	if c.Domain.ClearanceFactor < 0 || c.Domain.ClearanceFactor >= 1 {
		err = multierr.Append(err, fmt.Errorf("clearance_factor %g: must be in [0,1)", c.Domain.ClearanceFactor))
	}
	switch c.Domain.MergeWake {
	case "", "all", "last":
	default:
		err = multierr.Append(err, fmt.Errorf("merge_wake %q: must be empty, all or last", c.Domain.MergeWake))
	}

	if c.Mesh.MinSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("min_size %g: must be > 0", c.Mesh.MinSize))
	}
	if c.Mesh.GrowthRatio <= 1 {
		err = multierr.Append(err, fmt.Errorf("growth_ratio %g: must be > 1", c.Mesh.GrowthRatio))
	}
	if c.Mesh.MaxGrowthRatio <= 1 {
		err = multierr.Append(err, fmt.Errorf("max_growth_ratio %g: must be > 1", c.Mesh.MaxGrowthRatio))
	}
	if c.Mesh.GrowthRatio > c.Mesh.MaxGrowthRatio {
		err = multierr.Append(err, fmt.Errorf("growth_ratio %g exceeds max_growth_ratio %g",
			c.Mesh.GrowthRatio, c.Mesh.MaxGrowthRatio))
	}
	if c.Mesh.Rings < 1 {
		err = multierr.Append(err, fmt.Errorf("rings %d: must be >= 1", c.Mesh.Rings))
	}
	if c.Mesh.MinQuality < 0 || c.Mesh.MinQuality >= 1 {
		err = multierr.Append(err, fmt.Errorf("min_quality %g: must be in [0,1)", c.Mesh.MinQuality))
	}
	if bl := c.Mesh.BoundaryLayer; bl != nil {
		if bl.NumLayers < 1 {
			err = multierr.Append(err, fmt.Errorf("boundary_layer num_layers %d: must be >= 1", bl.NumLayers))
		}
		if bl.GrowthRatio <= 1 {
			err = multierr.Append(err, fmt.Errorf("boundary_layer growth_ratio %g: must be > 1", bl.GrowthRatio))
		}
		if bl.FirstLayerHeight <= 0 {
			err = multierr.Append(err, fmt.Errorf("boundary_layer first_layer_height %g: must be > 0", bl.FirstLayerHeight))
		}
	}

	return err
}

func (p *PlanformConfig) validate(surface string) error {
	var err error
	if len(p.RootPoints) < 4 {
		err = multierr.Append(err, fmt.Errorf("surface %q: planform root_points needs at least 4 points", surface))
	}
	if p.RootChord <= 0 {
		err = multierr.Append(err, fmt.Errorf("surface %q: planform root_chord must be > 0", surface))
	}
	n := len(p.Spans)
	if n == 0 {
		err = multierr.Append(err, fmt.Errorf("surface %q: planform needs at least one span segment", surface))
	}
	if len(p.Tapers) != n || len(p.SweepsDeg) != n || len(p.DihedralsDeg) != n {
		err = multierr.Append(err, fmt.Errorf("surface %q: planform spans, tapers, sweeps and dihedrals must have equal length", surface))
	}
	return err
}
