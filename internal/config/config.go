// Package config handles run configuration loading and validation.
package config

// Config holds all parameters for one geometry-to-mesh run.
type Config struct {
	Name     string          `yaml:"name"`
	Surfaces []SurfaceConfig `yaml:"surfaces"`
	Domain   DomainConfig    `yaml:"domain"`
	Mesh     MeshConfig      `yaml:"mesh"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// SurfaceConfig defines one lifting surface. Sections may be given
// explicitly, or generated from a planform and a root section.
type SurfaceConfig struct {
	Name     string           `yaml:"name"`
	Sections []SectionConfig  `yaml:"sections"`
	Planform *PlanformConfig  `yaml:"planform"`
	// TEThicknessTol is the trailing-edge gap above which the surface is
	// classified blunt, as a fraction of the root chord.
	TEThicknessTol float64 `yaml:"te_thickness_tol"`
}

// SectionConfig defines one spanwise station. Points are airfoil
// coordinates in Selig order (trailing edge first and last, x in [0,1])
// in the chordwise plane; Chord, IncidenceDeg and LEOffset place the
// section in space.
type SectionConfig struct {
	Points       [][3]float64 `yaml:"points"`
	Chord        float64      `yaml:"chord"`
	IncidenceDeg float64      `yaml:"incidence_deg"`
	LEOffset     [3]float64   `yaml:"le_offset"`
	TESize       float64      `yaml:"te_size"` // mesh size at trailing edge, 0 = mesh default
	LESize       float64      `yaml:"le_size"` // mesh size at leading edge, 0 = mesh default
}

// PlanformConfig generates sections from a single root airfoil and
// per-segment span, taper, sweep and dihedral.
type PlanformConfig struct {
	RootPoints   [][3]float64 `yaml:"root_points"`
	RootChord    float64      `yaml:"root_chord"`
	Spans        []float64    `yaml:"spans"`
	Tapers       []float64    `yaml:"tapers"`
	SweepsDeg    []float64    `yaml:"sweeps_deg"`
	DihedralsDeg []float64    `yaml:"dihedrals_deg"`
}

// DomainConfig defines the outer boundary and multi-surface policy.
type DomainConfig struct {
	Shape          string  `yaml:"shape"`           // box | sphere
	StandoffFactor float64 `yaml:"standoff_factor"` // farfield distance in root chords
	Merge          bool    `yaml:"merge"`           // union intersecting near-body boundaries
	MergeWake      string  `yaml:"merge_wake"`      // "" | all | last
	WakeLength     float64 `yaml:"wake_length"`     // 0 = standoff distance
	// ClearanceFactor is the minimum clearance between any surface and the
	// farfield, as a fraction of the standoff distance.
	ClearanceFactor float64 `yaml:"clearance_factor"`
}

// MeshConfig defines the size field and generation options.
type MeshConfig struct {
	MinSize        float64 `yaml:"min_size"`         // near-wall target edge length
	GrowthRatio    float64 `yaml:"growth_ratio"`     // geometric ratio between rings
	Rings          int     `yaml:"rings"`            // refinement rings around each wall
	FarfieldSize   float64 `yaml:"farfield_size"`    // 0 = computed from the growth law
	MaxGrowthRatio float64 `yaml:"max_growth_ratio"` // bound enforced on the composed field
	// MergeTolerance is the maximum trailing-edge gap that can be welded
	// into a sharp seam, as a fraction of the root chord.
	MergeTolerance float64              `yaml:"merge_tolerance"`
	BoundaryLayer  *BoundaryLayerConfig `yaml:"boundary_layer"`
	Algorithm2D    int                  `yaml:"algorithm_2d"`
	Algorithm3D    int                  `yaml:"algorithm_3d"`
	Smoothing      int                  `yaml:"smoothing"`
	Optimize       bool                 `yaml:"optimize"`
	MinQuality     float64              `yaml:"min_quality"` // abort below this element quality
}

// BoundaryLayerConfig requests normal refinement at walls for RANS use.
type BoundaryLayerConfig struct {
	NumLayers        int     `yaml:"num_layers"`
	GrowthRatio      float64 `yaml:"growth_ratio"`
	FirstLayerHeight float64 `yaml:"first_layer_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. Surface
// definitions have no default and must come from the config file.
func Default() *Config {
	return &Config{
		Name: "model",
		Domain: DomainConfig{
			Shape:           "box",
			StandoffFactor:  20,
			Merge:           false,
			WakeLength:      0,
			ClearanceFactor: 0.25,
		},
		Mesh: MeshConfig{
			MinSize:        0.01,
			GrowthRatio:    1.2,
			Rings:          25,
			FarfieldSize:   0,
			MaxGrowthRatio: 1.3,
			MergeTolerance: 1e-6,
			Algorithm2D:    5, // Delaunay
			Algorithm3D:    1, // Delaunay
			Smoothing:      10,
			Optimize:       true,
			MinQuality:     0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultTEThicknessTol is applied when a surface does not set its own
// trailing-edge thickness tolerance.
const DefaultTEThicknessTol = 0.005
