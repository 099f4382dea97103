package telemetry

// Collector accumulates windowed counters and produces WindowStats
// on flush. Distributions are sampled at flush time from the data the
// caller passes in; only the counters live here.
type Collector struct {
	windowFrames int32
	windowStart  int32

	deaths      int
	intakeTotal float64
}

// NewCollector creates a collector flushing every windowFrames frames.
func NewCollector(windowFrames int32) *Collector {
	if windowFrames <= 0 {
		windowFrames = 1
	}
	return &Collector{windowFrames: windowFrames}
}

// WindowDurationFrames returns the configured window length.
func (c *Collector) WindowDurationFrames() int32 {
	return c.windowFrames
}

// RecordDeath counts a plant death in the current window.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// RecordIntake adds a plant's soil draw for one frame.
func (c *Collector) RecordIntake(amount float64) {
	c.intakeTotal += amount
}

// ShouldFlush reports whether frame closes the current window.
func (c *Collector) ShouldFlush(frame int32) bool {
	return frame-c.windowStart >= c.windowFrames
}

// Flush builds the WindowStats for the closing window and resets the
// counters. sizes, healths and lights are end-of-window samples over
// alive plants.
func (c *Collector) Flush(frame int32, alive int, sizes, healths, lights []float64, soilWater, soilNutrients float64) WindowStats {
	s := WindowStats{
		WindowStartFrame: c.windowStart,
		WindowEndFrame:   frame,
		Alive:            alive,
		Deaths:           c.deaths,
		IntakeTotal:      c.intakeTotal,
		SoilWater:        soilWater,
		SoilNutrients:    soilNutrients,
	}

	s.SizeMean, s.SizeStd, s.SizeP10, s.SizeP50, s.SizeP90 = Distribution(sizes)
	s.HealthMean, _, s.HealthP10, s.HealthP50, s.HealthP90 = Distribution(healths)
	s.LightMean, _, _, _, _ = Distribution(lights)

	c.windowStart = frame
	c.deaths = 0
	c.intakeTotal = 0

	return s
}
