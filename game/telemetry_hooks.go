package game

import (
	"log/slog"
)

// flushTelemetry closes the stats window when due and writes the
// aggregates out.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.frame) {
		return
	}

	sizes, healths, lights := g.aliveSnapshot()

	soilWater := float64(g.soil.TotalWater())
	soilNutrients := float64(g.soil.TotalNutrients())

	stats := g.collector.Flush(g.frame, g.aliveCount, sizes, healths, lights, soilWater, soilNutrients)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			logWriteError("stats", err)
		}
	}
}

func logWriteError(kind string, err error) {
	slog.Error("failed to write "+kind, "error", err)
}
