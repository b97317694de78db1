package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	applySurfaceDefaults(cfg)
	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applySurfaceDefaults fills per-surface values that default from the
// global mesh configuration.
func applySurfaceDefaults(cfg *Config) {
	for i := range cfg.Surfaces {
		s := &cfg.Surfaces[i]
		if s.TEThicknessTol == 0 {
			s.TEThicknessTol = DefaultTEThicknessTol
		}
		for j := range s.Sections {
			sec := &s.Sections[j]
			if sec.Chord == 0 {
				sec.Chord = 1
			}
			if sec.TESize == 0 {
				sec.TESize = cfg.Mesh.MinSize
			}
			if sec.LESize == 0 {
				sec.LESize = cfg.Mesh.MinSize
			}
		}
	}
}
