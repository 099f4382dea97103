// Package telemetry handles per-frame export and windowed statistics for
// offline analysis of simulation runs.
package telemetry

import (
	"fmt"
	"strings"

	"github.com/jmallord/canopy/systems"
)

// PlantRow is one plant-frame record in plants.csv.
type PlantRow struct {
	Frame   int32   `csv:"frame"`
	PlantID uint32  `csv:"plant_id"`
	X       float32 `csv:"x"`
	Y       float32 `csv:"y"`
	Z       float32 `csv:"z"`
	Age     float32 `csv:"age"`
	Size    float32 `csv:"size"`
	Health  float32 `csv:"health"`
	Alive   bool    `csv:"alive"`
	Light   float32 `csv:"light"`
	Intake  float32 `csv:"intake"`
	Area    float32 `csv:"area"`
}

// SoilRow is one touched-cell record in soil.csv. Usage packs the
// per-plant breakdown as "id:amount" pairs joined with ';' so the
// variable-length breakdown fits a single CSV column.
type SoilRow struct {
	Frame      int32   `csv:"frame"`
	SoilX      int     `csv:"soil_x"`
	SoilZ      int     `csv:"soil_z"`
	Water      float32 `csv:"water"`
	Nitrogen   float32 `csv:"nitrogen"`
	Phosphorus float32 `csv:"phosphorus"`
	Potassium  float32 `csv:"potassium"`
	Occupancy  int     `csv:"occupancy"`
	Usage      string  `csv:"plant_usage"`
}

// FormatUsage encodes the per-plant draws against one cell.
func FormatUsage(draws []systems.CellDraw) string {
	var b strings.Builder
	for i, d := range draws {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d:%g", d.PlantID, d.Taken)
	}
	return b.String()
}
