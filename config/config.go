// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Grid       GridConfig       `yaml:"grid"`
	Population PopulationConfig `yaml:"population"`
	Plant      PlantConfig      `yaml:"plant"`
	Engine     EngineConfig     `yaml:"engine"`
	Soil       SoilConfig       `yaml:"soil"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds soil grid dimensions.
type GridConfig struct {
	Size     int     `yaml:"size"`      // Side length in cells (grid is square)
	CellSize float64 `yaml:"cell_size"` // World units per cell
}

// PopulationConfig holds the initial plant population size.
type PopulationConfig struct {
	Plants int `yaml:"plants"`
}

// PlantConfig holds per-plant creation parameters.
// GrowthRate and MaxAge are randomized per plant: base + jitter * U[0,1).
type PlantConfig struct {
	InitialSize              float64     `yaml:"initial_size"`
	MinSize                  float64     `yaml:"min_size"` // Size floor, never undershot
	GrowthRateBase           float64     `yaml:"growth_rate_base"`
	GrowthRateJitter         float64     `yaml:"growth_rate_jitter"`
	MaxAgeBase               float64     `yaml:"max_age_base"`
	MaxAgeJitter             float64     `yaml:"max_age_jitter"`
	PhotosyntheticEfficiency float64     `yaml:"photosynthetic_efficiency"`
	BaseMaintenance          float64     `yaml:"base_maintenance"`
	MaintenancePerSize       float64     `yaml:"maintenance_per_size"`
	AdsorptionEfficiency     float64     `yaml:"adsorption_efficiency"`
	HeightScale              float64     `yaml:"height_scale"`  // Visual height = size * this
	GroundOffset             float64     `yaml:"ground_offset"` // Small Y offset keeping the base on the plane
	Drift                    DriftConfig `yaml:"drift"`
}

// DriftConfig holds seedling drift parameters. Plants younger than half
// their max age creep by a positive-only random offset up to Scale per axis.
type DriftConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale"`
}

// EngineConfig holds the growth engine constants.
type EngineConfig struct {
	ShadeCoefficient float64 `yaml:"shade_coefficient"` // Per-occluder shading strength
	GrowthScale      float64 `yaml:"growth_scale"`      // Size delta per frame = growthRate * this
	DeficitPenalty   float64 `yaml:"deficit_penalty"`   // Growth multiplier when netEnergy <= 0
	AgeMaintenance   float64 `yaml:"age_maintenance"`   // Maintenance contribution of ageFraction
	DemandFactor     float64 `yaml:"demand_factor"`     // Resource demand = growth delta * this
	DepletionScale   float64 `yaml:"depletion_scale"`   // Soil scalar drop per unit taken
	HealthEnergy     float64 `yaml:"health_energy"`     // Health delta per unit netEnergy
	HealthDecay      float64 `yaml:"health_decay"`      // Fixed per-frame health decay
	AgeIncrement     float64 `yaml:"age_increment"`     // Age advance per frame (frame-count time)
	SenescenceAge    float64 `yaml:"senescence_age"`    // Age fraction where tint starts fading
}

// SoilConfig holds soil cell initialization parameters.
// Each resource scalar starts at FertilityMin + FertilityRange * U[0,1).
type SoilConfig struct {
	FertilityMin   float64 `yaml:"fertility_min"`
	FertilityRange float64 `yaml:"fertility_range"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Frames per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CellSize32  float32 // Grid.CellSize as float32
	HalfGrid    float32 // Grid extent half-width in world units
	ScreenW32   float32
	ScreenH32   float32
	HeightScale float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations that cannot start a simulation.
func (c *Config) validate() error {
	if c.Grid.Size <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %d", c.Grid.Size)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %g", c.Grid.CellSize)
	}
	if c.Population.Plants < 0 {
		return fmt.Errorf("config: plant count must not be negative, got %d", c.Population.Plants)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CellSize32 = float32(c.Grid.CellSize)
	c.Derived.HalfGrid = float32(c.Grid.Size) * float32(c.Grid.CellSize) / 2
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.HeightScale = float32(c.Plant.HeightScale)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
