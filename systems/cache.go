package systems

import "github.com/jmallord/canopy/config"

// Cached config values for hot paths. The growth engine and light model
// run for every plant every frame; reading through config.Cfg() there
// costs pointer chasing and float64 conversions we can do once.
var (
	cacheInitialized bool

	cachedShadeCoefficient float32
	cachedGrowthScale      float32
	cachedDeficitPenalty   float32
	cachedAgeMaintenance   float32
	cachedDemandFactor     float32
	cachedDepletionScale   float32
	cachedHealthEnergy     float32
	cachedHealthDecay      float32
	cachedAgeIncrement     float32
	cachedSenescenceAge    float32

	cachedMinSize      float32
	cachedHeightScale  float32
	cachedGroundOffset float32
	cachedDriftEnabled bool
	cachedDriftScale   float32
)

// InitGrowthCache snapshots engine constants from the loaded config.
// Must be called after config.Init and before the first frame.
func InitGrowthCache() {
	cfg := config.Cfg()

	cachedShadeCoefficient = float32(cfg.Engine.ShadeCoefficient)
	cachedGrowthScale = float32(cfg.Engine.GrowthScale)
	cachedDeficitPenalty = float32(cfg.Engine.DeficitPenalty)
	cachedAgeMaintenance = float32(cfg.Engine.AgeMaintenance)
	cachedDemandFactor = float32(cfg.Engine.DemandFactor)
	cachedDepletionScale = float32(cfg.Engine.DepletionScale)
	cachedHealthEnergy = float32(cfg.Engine.HealthEnergy)
	cachedHealthDecay = float32(cfg.Engine.HealthDecay)
	cachedAgeIncrement = float32(cfg.Engine.AgeIncrement)
	cachedSenescenceAge = float32(cfg.Engine.SenescenceAge)

	cachedMinSize = float32(cfg.Plant.MinSize)
	cachedHeightScale = float32(cfg.Plant.HeightScale)
	cachedGroundOffset = float32(cfg.Plant.GroundOffset)
	cachedDriftEnabled = cfg.Plant.Drift.Enabled
	cachedDriftScale = float32(cfg.Plant.Drift.Scale)

	cacheInitialized = true
}
