package systems

import (
	"math/rand"

	"github.com/jmallord/canopy/components"
)

// CellDraw records one plant's draw from one soil cell during a frame.
type CellDraw struct {
	PlantID uint32
	Overlap float32 // This plant's overlap fraction with the cell
	Taken   float32 // Amount drawn, before depletion scaling
}

// FrameUsage maps soil cell index to the draws made against it this frame.
// It is built fresh each frame, handed to the output stage, and discarded;
// it is never simulation state.
type FrameUsage map[int][]CellDraw

// Record appends a draw against the given cell index.
func (u FrameUsage) Record(idx int, d CellDraw) {
	u[idx] = append(u[idx], d)
}

// Plant tint constants. Live plants hold a steady green; past the
// senescence threshold the tone shifts and alpha fades toward zero.
var (
	liveTint      = components.Tint{R: 50, G: 150, B: 50, A: 255}
	senescentTint = components.Tint{R: 140, G: 120, B: 40, A: 255}
)

// LiveTint returns the tint of a healthy, pre-senescent plant.
func LiveTint() components.Tint {
	return liveTint
}

// Grow advances one plant by a single frame: light- and soil-driven
// production against maintenance, growth, resource depletion, health,
// aging, and death. lightFactor must come from the frame-start snapshot
// (ShadingFactor). Soil mutations and usage records are written in place.
// A dead plant only gets its uptake reporting zeroed; nothing else runs.
func Grow(
	pos *components.Position,
	body *components.Body,
	vit *components.Vitals,
	traits components.Traits,
	tint *components.Tint,
	uptake *components.Uptake,
	meta components.Meta,
	soil *Soil,
	lightFactor float32,
	usage FrameUsage,
	rng *rand.Rand,
) {
	uptake.Intake = 0
	uptake.Area = 0

	if !vit.Alive {
		return
	}

	half := body.Size / 2
	candidates := OccupiedCells(nil, pos.X, pos.Z, half, soil.Size, soil.CellSize)

	// Keep only cells with real overlap; remember each fraction.
	cells := candidates[:0]
	fracs := make([]float32, 0, len(candidates))
	var totalOverlap float32
	for _, idx := range candidates {
		cx, cz := soil.CellCenter(idx)
		f := OverlapFraction(pos.X, pos.Z, half, cx, cz, soil.CellSize/2)
		if f <= 0 {
			continue
		}
		cells = append(cells, idx)
		fracs = append(fracs, f)
		totalOverlap += f
	}

	// Fully off-grid or degenerate footprint: only time passes.
	if totalOverlap <= 0 {
		vit.Age += cachedAgeIncrement
		vit.Alive = vit.Health > 0 && vit.Age < vit.MaxAge
		return
	}

	// Resource availability: overlap-weighted averages over touched cells.
	var nutrientFactor, waterFactor float32
	for i, idx := range cells {
		c := &soil.Cells[idx]
		nutrientFactor += fracs[i] * (c.Nitrogen + c.Phosphorus + c.Potassium) / 3
		waterFactor += fracs[i] * c.Water
	}
	nutrientFactor /= totalOverlap
	waterFactor /= totalOverlap

	ageFraction := vit.Age / vit.MaxAge

	production := lightFactor * nutrientFactor * waterFactor * traits.PhotosynthEff * body.GrowthRate
	maintenance := traits.BaseMaintenance + traits.MaintenancePerSize*body.Size + ageFraction*cachedAgeMaintenance
	netEnergy := production - maintenance

	delta := body.GrowthRate * cachedGrowthScale
	if netEnergy <= 0 {
		delta *= cachedDeficitPenalty
	}
	body.Size += delta
	if body.Size < cachedMinSize {
		body.Size = cachedMinSize
	}

	// Split demand across cells by overlap share; take-fractions sum to 1.
	demand := maxf(0, delta*cachedDemandFactor)
	for i, idx := range cells {
		c := &soil.Cells[idx]
		taken := demand * (fracs[i] / totalOverlap) * traits.AdsorptionEff
		dep := taken * cachedDepletionScale
		c.Water = maxf(0, c.Water-dep)
		c.Nitrogen = maxf(0, c.Nitrogen-dep)
		c.Phosphorus = maxf(0, c.Phosphorus-dep)
		c.Potassium = maxf(0, c.Potassium-dep)

		usage.Record(idx, CellDraw{PlantID: meta.ID, Overlap: fracs[i], Taken: taken})
		uptake.Intake += taken
		uptake.Area += fracs[i]
	}

	vit.Health = clampf(vit.Health+netEnergy*cachedHealthEnergy-cachedHealthDecay, 0, 1)
	vit.Age += cachedAgeIncrement

	// Seedlings creep slightly, positive-only, clamped to the grid.
	if cachedDriftEnabled && rng != nil && ageFraction < 0.5 {
		halfGrid := soil.HalfGrid()
		if dx := rng.Float32()*cachedDriftScale*2 - cachedDriftScale; dx > 0 {
			pos.X = clampf(pos.X+dx, -halfGrid, halfGrid)
		}
		if dz := rng.Float32()*cachedDriftScale*2 - cachedDriftScale; dz > 0 {
			pos.Z = clampf(pos.Z+dz, -halfGrid, halfGrid)
		}
	}

	// Base stays on the ground plane as the plant grows.
	pos.Y = body.Size*cachedHeightScale/2 + cachedGroundOffset

	*tint = TintForAge(ageFraction)

	vit.Alive = vit.Health > 0 && vit.Age < vit.MaxAge
}

// TintForAge derives the cosmetic tint from age fraction: a steady live
// green below the senescence threshold, then a fading senescent tone whose
// alpha reaches zero as age fraction approaches 1.
func TintForAge(ageFraction float32) components.Tint {
	if ageFraction <= cachedSenescenceAge {
		return liveTint
	}
	span := 1 - cachedSenescenceAge
	if span <= 0 {
		return liveTint
	}
	fade := clampf(1-(ageFraction-cachedSenescenceAge)/span, 0, 1)
	t := senescentTint
	t.A = uint8(fade * 255)
	return t
}
