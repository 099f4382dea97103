package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the simulation step.
const (
	PhaseSnapshot  = "snapshot"
	PhaseLight     = "light"
	PhaseGrowth    = "growth"
	PhaseTelemetry = "telemetry"
)

// PerfCollector accumulates step and phase timings. Stats drains the
// accumulated window, so the reporting cadence is set by whoever calls
// it (the stats flush, here).
type PerfCollector struct {
	steps       int
	stepTotal   time.Duration
	minStep     time.Duration
	maxStep     time.Duration
	phaseTotals map[string]time.Duration

	stepStart  time.Time
	phaseStart time.Time
	lastPhase  string

	// Frame timing (graphics mode)
	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates an empty performance collector.
func NewPerfCollector() *PerfCollector {
	return &PerfCollector{phaseTotals: make(map[string]time.Duration)}
}

// StartStep begins timing a new simulation step.
func (p *PerfCollector) StartStep() {
	p.stepStart = time.Now()
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.phaseTotals[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndStep closes the final phase and folds the step into the window.
func (p *PerfCollector) EndStep() {
	now := time.Now()
	if p.lastPhase != "" {
		p.phaseTotals[p.lastPhase] += now.Sub(p.phaseStart)
	}

	d := now.Sub(p.stepStart)
	p.stepTotal += d
	if p.steps == 0 || d < p.minStep {
		p.minStep = d
	}
	if d > p.maxStep {
		p.maxStep = d
	}
	p.steps++
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats holds one window's aggregated timings.
type PerfStats struct {
	AvgStepDuration time.Duration
	MinStepDuration time.Duration
	MaxStepDuration time.Duration

	// Phase percentages of total step time
	PhasePct map[string]float64

	StepsPerSecond float64

	// Frame timing (graphics mode)
	FPS float64
}

// Stats returns the window's aggregates and resets the accumulators.
func (p *PerfCollector) Stats() PerfStats {
	var fps float64
	if p.frameDuration > 0 {
		fps = float64(time.Second) / float64(p.frameDuration)
	}

	s := PerfStats{
		PhasePct: make(map[string]float64),
		FPS:      fps,
	}
	if p.steps == 0 {
		return s
	}

	s.AvgStepDuration = p.stepTotal / time.Duration(p.steps)
	s.MinStepDuration = p.minStep
	s.MaxStepDuration = p.maxStep
	if s.AvgStepDuration > 0 {
		s.StepsPerSecond = float64(time.Second) / float64(s.AvgStepDuration)
	}
	for phase, total := range p.phaseTotals {
		s.PhasePct[phase] = float64(total) / float64(p.stepTotal) * 100
	}

	p.steps = 0
	p.stepTotal = 0
	p.minStep = 0
	p.maxStep = 0
	clear(p.phaseTotals)

	return s
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_step_us", s.AvgStepDuration.Microseconds(),
		"min_step_us", s.MinStepDuration.Microseconds(),
		"max_step_us", s.MaxStepDuration.Microseconds(),
		"steps_per_sec", int(s.StepsPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}

	phases := []string{PhaseSnapshot, PhaseLight, PhaseGrowth, PhaseTelemetry}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}
