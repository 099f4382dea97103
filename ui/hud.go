// Package ui draws the HUD and the interactive controls panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData carries the values shown in the status line.
type HUDData struct {
	Frame          int32
	Alive          int
	Paused         bool
	StepsPerUpdate int
	FPS            int
}

// DrawHUD renders the top-left status lines.
func DrawHUD(d HUDData) {
	rl.DrawText(fmt.Sprintf("Plants alive: %d", d.Alive), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Frame: %d  x%d  FPS: %d", d.Frame, d.StepsPerUpdate, d.FPS), 10, 34, 16, rl.LightGray)

	if d.Paused {
		rl.DrawText("PAUSED", 10, 54, 16, rl.Yellow)
	}

	rl.DrawText("WASD move  Space/Ctrl up/down  arrows look  P pause  Tab panel", 10, 74, 12, rl.Gray)
}

// DrawControlsPanel renders the simulation speed slider and pause
// button. Returns the possibly-adjusted steps per update.
func DrawControlsPanel(steps float32, togglePause func()) int {
	panelX := float32(10)
	panelY := float32(100)
	panelW := float32(240)

	rl.DrawRectangle(int32(panelX)-4, int32(panelY)-4, int32(panelW)+8, 96, rl.NewColor(0, 0, 0, 160))
	rl.DrawText("Simulation", int32(panelX), int32(panelY), 16, rl.White)
	panelY += 24

	rl.DrawText("Steps per frame", int32(panelX), int32(panelY), 12, rl.LightGray)
	panelY += 16
	newSteps := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelW - 50, Height: 18},
		"1", "10",
		steps, 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%d", int(newSteps)), int32(panelX+panelW-40), int32(panelY)+2, 14, rl.White)
	panelY += 28

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 100, Height: 22}, "Pause") {
		togglePause()
	}

	if newSteps < 1 {
		newSteps = 1
	}
	return int(newSteps)
}
