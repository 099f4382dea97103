package game

import (
	"sort"

	"github.com/jmallord/canopy/systems"
	"github.com/jmallord/canopy/telemetry"
)

// Update runs input handling and simulation steps for one render frame.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// UpdateHeadless runs one simulation step with no input handling.
func (g *Game) UpdateHeadless() {
	g.Step()
}

// Step advances the simulation by one frame: snapshot geometry, compute
// light factors from the snapshot, grow every plant in id order, then
// emit telemetry. All light factors are derived from frame-start state,
// so growth within the frame cannot shade a later plant.
func (g *Game) Step() {
	g.perfCollector.StartStep()

	// 1. Snapshot positions and sizes. Dead plants stay in the
	// snapshot: a standing dead trunk still casts shade.
	g.perfCollector.StartPhase(telemetry.PhaseSnapshot)
	g.occluders = g.occluders[:0]
	query := g.plantFilter.Query()
	for query.Next() {
		pos, body, _, _, _, meta, _ := query.Get()
		g.occluders = append(g.occluders, systems.Occluder{
			ID:   meta.ID,
			X:    pos.X,
			Y:    pos.Y,
			Z:    pos.Z,
			Size: body.Size,
		})
	}

	// 2. Light factors against the snapshot.
	g.perfCollector.StartPhase(telemetry.PhaseLight)
	clear(g.lights)
	for i := range g.occluders {
		o := g.occluders[i]
		g.lights[o.ID] = systems.ShadingFactor(o, g.occluders)
	}

	// 3. Growth, in creation (id) order.
	g.perfCollector.StartPhase(telemetry.PhaseGrowth)
	usage := make(systems.FrameUsage)
	query = g.plantFilter.Query()
	for query.Next() {
		pos, body, vit, traits, tint, meta, uptake := query.Get()

		aliveBefore := vit.Alive
		systems.Grow(pos, body, vit, *traits, tint, uptake, *meta, g.soil, g.lights[meta.ID], usage, g.rng)

		if aliveBefore && !vit.Alive {
			g.collector.RecordDeath()
			g.aliveCount--
		}
		// Unconditional: a plant that died this frame still drew from the
		// soil this frame, and a corpse's uptake reads 0.
		g.collector.RecordIntake(float64(uptake.Intake))
	}

	// 4. Telemetry and CSV output.
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.emitFrame(usage)
	g.flushTelemetry()

	g.frame++
	g.perfCollector.EndStep()
}

// emitFrame writes the per-frame plant and soil records.
func (g *Game) emitFrame(usage systems.FrameUsage) {
	if g.outputManager == nil {
		return
	}

	plantRows := make([]telemetry.PlantRow, 0, len(g.occluders))
	query := g.plantFilter.Query()
	for query.Next() {
		pos, body, vit, _, _, meta, uptake := query.Get()
		plantRows = append(plantRows, telemetry.PlantRow{
			Frame:   g.frame,
			PlantID: meta.ID,
			X:       pos.X,
			Y:       pos.Y,
			Z:       pos.Z,
			Age:     vit.Age,
			Size:    body.Size,
			Health:  vit.Health,
			Alive:   vit.Alive,
			Light:   g.lights[meta.ID],
			Intake:  uptake.Intake,
			Area:    uptake.Area,
		})
	}
	if err := g.outputManager.WritePlants(plantRows); err != nil {
		logWriteError("plants", err)
	}

	// Only cells something drew from this frame, in index order so the
	// file is deterministic for a given seed.
	indices := make([]int, 0, len(usage))
	for idx := range usage {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	soilRows := make([]telemetry.SoilRow, 0, len(indices))
	for _, idx := range indices {
		cell := &g.soil.Cells[idx]
		draws := usage[idx]
		soilRows = append(soilRows, telemetry.SoilRow{
			Frame:      g.frame,
			SoilX:      int(cell.X),
			SoilZ:      int(cell.Z),
			Water:      cell.Water,
			Nitrogen:   cell.Nitrogen,
			Phosphorus: cell.Phosphorus,
			Potassium:  cell.Potassium,
			Occupancy:  len(draws),
			Usage:      telemetry.FormatUsage(draws),
		})
	}
	if err := g.outputManager.WriteSoil(soilRows); err != nil {
		logWriteError("soil", err)
	}
}

// aliveSnapshot gathers end-of-window samples over living plants.
func (g *Game) aliveSnapshot() (sizes, healths, lights []float64) {
	query := g.plantFilter.Query()
	for query.Next() {
		_, body, vit, _, _, meta, _ := query.Get()
		if !vit.Alive {
			continue
		}
		sizes = append(sizes, float64(body.Size))
		healths = append(healths, float64(vit.Health))
		lights = append(lights, float64(g.lights[meta.ID]))
	}
	return sizes, healths, lights
}
