package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a frame window.
type WindowStats struct {
	WindowStartFrame int32 `csv:"-"`
	WindowEndFrame   int32 `csv:"window_end"`

	// Population at window end
	Alive  int `csv:"alive"`
	Deaths int `csv:"deaths"` // Deaths during the window

	// Size distribution (sampled at window end, alive plants only)
	SizeMean float64 `csv:"size_mean"`
	SizeStd  float64 `csv:"size_std"`
	SizeP10  float64 `csv:"size_p10"`
	SizeP50  float64 `csv:"size_p50"`
	SizeP90  float64 `csv:"size_p90"`

	// Health distribution
	HealthMean float64 `csv:"health_mean"`
	HealthP10  float64 `csv:"health_p10"`
	HealthP50  float64 `csv:"health_p50"`
	HealthP90  float64 `csv:"health_p90"`

	// Canopy and uptake
	LightMean   float64 `csv:"light_mean"`
	IntakeTotal float64 `csv:"intake_total"` // Summed soil draws during the window

	// Remaining soil pools (resources never regenerate; both decline)
	SoilWater     float64 `csv:"soil_water"`
	SoilNutrients float64 `csv:"soil_nutrients"`
}

// Distribution computes mean, standard deviation, and the 10/50/90
// percentiles of values. Returns zeros for an empty slice.
func Distribution(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Int("alive", s.Alive),
		slog.Int("deaths", s.Deaths),
		slog.Float64("size_mean", s.SizeMean),
		slog.Float64("size_std", s.SizeStd),
		slog.Float64("size_p10", s.SizeP10),
		slog.Float64("size_p50", s.SizeP50),
		slog.Float64("size_p90", s.SizeP90),
		slog.Float64("health_mean", s.HealthMean),
		slog.Float64("health_p10", s.HealthP10),
		slog.Float64("health_p50", s.HealthP50),
		slog.Float64("health_p90", s.HealthP90),
		slog.Float64("light_mean", s.LightMean),
		slog.Float64("intake_total", s.IntakeTotal),
		slog.Float64("soil_water", s.SoilWater),
		slog.Float64("soil_nutrients", s.SoilNutrients),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"alive", s.Alive,
		"deaths", s.Deaths,
		"size_mean", s.SizeMean,
		"size_p50", s.SizeP50,
		"health_mean", s.HealthMean,
		"health_p50", s.HealthP50,
		"light_mean", s.LightMean,
		"intake_total", s.IntakeTotal,
		"soil_water", s.SoilWater,
		"soil_nutrients", s.SoilNutrients,
	)
}
