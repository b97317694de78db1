package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "box", cfg.Domain.Shape)
	assert.Equal(t, 20.0, cfg.Domain.StandoffFactor)
	assert.False(t, cfg.Domain.Merge)
	assert.Equal(t, 1.2, cfg.Mesh.GrowthRatio)
	assert.Equal(t, 1.3, cfg.Mesh.MaxGrowthRatio)
	assert.Equal(t, 25, cfg.Mesh.Rings)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
name: m6
surfaces:
  - name: wing
    sections:
      - points: [[1, 0, 0], [0.5, 0, 0.06], [0, 0, 0], [0.5, 0, -0.06], [1, 0, 0]]
        chord: 0.8
      - points: [[1, 0, 0], [0.5, 0, 0.06], [0, 0, 0], [0.5, 0, -0.06], [1, 0, 0]]
        chord: 0.45
        le_offset: [0.69, 1.196, 0]
domain:
  shape: sphere
  standoff_factor: 25
mesh:
  min_size: 0.008
  growth_ratio: 1.15
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "m6", cfg.Name)
	require.Len(t, cfg.Surfaces, 1)
	assert.Equal(t, "wing", cfg.Surfaces[0].Name)
	require.Len(t, cfg.Surfaces[0].Sections, 2)
	assert.Equal(t, 0.45, cfg.Surfaces[0].Sections[1].Chord)
	assert.Equal(t, "sphere", cfg.Domain.Shape)
	assert.Equal(t, 25.0, cfg.Domain.StandoffFactor)
	assert.Equal(t, 0.008, cfg.Mesh.MinSize)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults survive a partial file.
	assert.Equal(t, 25, cfg.Mesh.Rings)
	assert.Equal(t, 1.3, cfg.Mesh.MaxGrowthRatio)

	// Per-surface defaults are filled in.
	assert.Equal(t, DefaultTEThicknessTol, cfg.Surfaces[0].TEThicknessTol)
	assert.Equal(t, cfg.Mesh.MinSize, cfg.Surfaces[0].Sections[0].TESize)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("surfaces:\n  width: [unclosed\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Surfaces = []SurfaceConfig{{
			Name: "wing",
			Sections: []SectionConfig{
				{Points: [][3]float64{{1, 0, 0}, {0.5, 0, 0.1}, {0, 0, 0}, {0.5, 0, -0.1}}, Chord: 1},
				{Points: [][3]float64{{1, 0, 0}, {0.5, 0, 0.1}, {0, 0, 0}, {0.5, 0, -0.1}}, Chord: 1, LEOffset: [3]float64{0, 1, 0}},
			},
		}}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"no surfaces", func(c *Config) { c.Surfaces = nil }, "at least one surface"},
		{"duplicate names", func(c *Config) { c.Surfaces = append(c.Surfaces, c.Surfaces[0]) }, "duplicate name"},
		{"bad shape", func(c *Config) { c.Domain.Shape = "torus" }, "must be box or sphere"},
		{"standoff too small", func(c *Config) { c.Domain.StandoffFactor = 0.5 }, "must be >= 1"},
		{"bad merge_wake", func(c *Config) { c.Domain.MergeWake = "some" }, "merge_wake"},
		{"growth ratio", func(c *Config) { c.Mesh.GrowthRatio = 1.0 }, "growth_ratio"},
		{"growth above max", func(c *Config) { c.Mesh.GrowthRatio = 1.5 }, "exceeds max_growth_ratio"},
		{"min size", func(c *Config) { c.Mesh.MinSize = 0 }, "min_size"},
		{"rings", func(c *Config) { c.Mesh.Rings = 0 }, "rings"},
		{"min quality", func(c *Config) { c.Mesh.MinQuality = 1.5 }, "min_quality"},
		{"boundary layer", func(c *Config) {
			c.Mesh.BoundaryLayer = &BoundaryLayerConfig{NumLayers: 0, GrowthRatio: 1.1, FirstLayerHeight: 1e-5}
		}, "num_layers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
