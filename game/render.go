package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/jmallord/canopy/ui"
)

// Render draws the world and the HUD.
func (g *Game) Render() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(18, 22, 28, 255))

	cam := g.raylibCamera()
	rl.BeginMode3D(cam)
	g.renderSoil()
	g.renderPlants()
	rl.EndMode3D()

	g.renderHUD()

	rl.EndDrawing()
}

// raylibCamera converts the free-fly camera to a raylib Camera3D.
func (g *Game) raylibCamera() rl.Camera3D {
	tx, ty, tz := g.cam.Target()
	return rl.Camera3D{
		Position:   rl.NewVector3(g.cam.X, g.cam.Y, g.cam.Z),
		Target:     rl.NewVector3(tx, ty, tz),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

// renderSoil draws the soil grid as thin tiles, shaded by remaining
// water so depletion reads at a glance.
func (g *Game) renderSoil() {
	cell := g.soil.CellSize
	for i := range g.soil.Cells {
		c := &g.soil.Cells[i]
		cx, cz := g.soil.CellCenter(i)

		// Wet soil is dark brown; depleted soil bleaches out.
		dry := 1 - clamp01(c.Water)
		r := uint8(92 + dry*70)
		gr := uint8(64 + dry*60)
		b := uint8(40 + dry*40)

		rl.DrawCube(rl.NewVector3(cx, -0.05, cz), cell, 0.1, cell, rl.NewColor(r, gr, b, 255))
	}
}

// renderPlants draws each plant as a cube sized and tinted by its state.
// Dead plants are skipped; their CSV rows are the record of them.
func (g *Game) renderPlants() {
	query := g.plantFilter.Query()
	for query.Next() {
		pos, body, vit, _, tint, _, _ := query.Get()
		if !vit.Alive {
			continue
		}

		p := rl.NewVector3(pos.X, pos.Y, pos.Z)
		rl.DrawCube(p, body.Size, body.Size, body.Size, rl.NewColor(tint.R, tint.G, tint.B, tint.A))
		rl.DrawCubeWires(p, body.Size, body.Size, body.Size, rl.NewColor(20, 40, 20, tint.A))
	}
}

// renderHUD draws the status line and, when toggled, the controls panel.
func (g *Game) renderHUD() {
	data := ui.HUDData{
		Frame:          g.frame,
		Alive:          g.aliveCount,
		Paused:         g.paused,
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            int(rl.GetFPS()),
	}
	ui.DrawHUD(data)

	if g.showControls {
		steps := ui.DrawControlsPanel(float32(g.stepsPerUpdate), func() { g.paused = !g.paused })
		g.stepsPerUpdate = steps
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
