package game

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/jmallord/canopy/camera"
	"github.com/jmallord/canopy/components"
	"github.com/jmallord/canopy/config"
	"github.com/jmallord/canopy/systems"
	"github.com/jmallord/canopy/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindow    int32  // frames per stats window (0 = config default)
	OutputDir      string // CSV output directory ("" = disabled)
	Headless       bool
	StepsPerUpdate int // simulation steps per render frame (min 1)
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Entity mappers - using the 7 components a plant carries
	plantMapper *ecs.Map7[
		components.Position,
		components.Body,
		components.Vitals,
		components.Traits,
		components.Tint,
		components.Meta,
		components.Uptake,
	]
	plantFilter *ecs.Filter7[
		components.Position,
		components.Body,
		components.Vitals,
		components.Traits,
		components.Tint,
		components.Meta,
		components.Uptake,
	]

	soil *systems.Soil

	// Telemetry
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	perfCollector *telemetry.PerfCollector
	logStats      bool

	// Per-frame scratch buffers, reused across steps
	occluders []systems.Occluder
	lights    map[uint32]float32

	// State
	frame          int32
	paused         bool
	aliveCount     int
	stepsPerUpdate int
	showControls   bool

	cam *camera.Camera
}

// NewGameWithOptions creates a game instance from the loaded config
// and the given options.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	systems.InitGrowthCache()

	rng := rand.New(rand.NewSource(opts.Seed))

	soil, err := systems.NewSoil(
		cfg.Grid.Size,
		cfg.Derived.CellSize32,
		float32(cfg.Soil.FertilityMin),
		float32(cfg.Soil.FertilityRange),
		rng,
	)
	if err != nil {
		return nil, fmt.Errorf("creating soil: %w", err)
	}

	window := opts.StatsWindow
	if window <= 0 {
		window = int32(cfg.Telemetry.StatsWindow)
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}

	world := ecs.NewWorld()

	g := &Game{
		world: world,
		rng:   rng,
		soil:  soil,
		plantMapper: ecs.NewMap7[
			components.Position,
			components.Body,
			components.Vitals,
			components.Traits,
			components.Tint,
			components.Meta,
			components.Uptake,
		](world),
		plantFilter: ecs.NewFilter7[
			components.Position,
			components.Body,
			components.Vitals,
			components.Traits,
			components.Tint,
			components.Meta,
			components.Uptake,
		](world),
		collector:      telemetry.NewCollector(window),
		outputManager:  outputManager,
		perfCollector:  telemetry.NewPerfCollector(),
		logStats:       opts.LogStats,
		lights:         make(map[uint32]float32),
		stepsPerUpdate: max(1, opts.StepsPerUpdate),
	}

	g.spawnInitialPopulation(cfg)

	half := cfg.Derived.HalfGrid
	g.cam = camera.New(0, half*1.2, half*2.2)

	if g.outputManager != nil {
		if err := g.outputManager.WriteConfig(cfg); err != nil {
			return nil, fmt.Errorf("writing run config: %w", err)
		}
	}

	return g, nil
}

// spawnInitialPopulation creates the starting plants on integer grid
// positions. Entities are created in id order and never removed, so
// query iteration stays in id order for the life of the run.
func (g *Game) spawnInitialPopulation(cfg *config.Config) {
	for i := 0; i < cfg.Population.Plants; i++ {
		x := float32(g.rng.Intn(cfg.Grid.Size) - cfg.Grid.Size/2)
		z := float32(g.rng.Intn(cfg.Grid.Size) - cfg.Grid.Size/2)

		pos := components.Position{X: x, Y: 0.5, Z: z}
		body := components.Body{
			Size:       float32(cfg.Plant.InitialSize),
			GrowthRate: float32(cfg.Plant.GrowthRateBase) + g.rng.Float32()*float32(cfg.Plant.GrowthRateJitter),
		}
		vit := components.Vitals{
			Health: 1.0,
			Age:    0,
			MaxAge: float32(cfg.Plant.MaxAgeBase) + g.rng.Float32()*float32(cfg.Plant.MaxAgeJitter),
			Alive:  true,
		}
		traits := components.Traits{
			PhotosynthEff:      float32(cfg.Plant.PhotosyntheticEfficiency),
			BaseMaintenance:    float32(cfg.Plant.BaseMaintenance),
			MaintenancePerSize: float32(cfg.Plant.MaintenancePerSize),
			AdsorptionEff:      float32(cfg.Plant.AdsorptionEfficiency),
		}
		tint := systems.LiveTint()
		meta := components.Meta{ID: uint32(i)}
		uptake := components.Uptake{}

		g.plantMapper.NewEntity(&pos, &body, &vit, &traits, &tint, &meta, &uptake)
		g.aliveCount++
	}
}

// Frame returns the current simulation frame.
func (g *Game) Frame() int32 {
	return g.frame
}

// AliveCount returns the number of living plants.
func (g *Game) AliveCount() int {
	return g.aliveCount
}

// Soil returns the soil grid.
func (g *Game) Soil() *systems.Soil {
	return g.soil
}

// Close releases output resources.
func (g *Game) Close() error {
	return g.outputManager.Close()
}
