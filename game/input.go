package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.showControls = !g.showControls
	}

	g.handleCameraInput()
}

// handleCameraInput processes free-fly camera movement.
func (g *Game) handleCameraInput() {
	if g.cam == nil {
		return
	}

	dt := rl.GetFrameTime()

	var forward, right, up float32
	if rl.IsKeyDown(rl.KeyW) {
		forward += 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		right += 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		right -= 1
	}
	if rl.IsKeyDown(rl.KeySpace) {
		up += 1
	}
	if rl.IsKeyDown(rl.KeyLeftControl) {
		up -= 1
	}
	if forward != 0 || right != 0 || up != 0 {
		g.cam.Move(forward, right, up, dt)
	}

	var yaw, pitch float32
	if rl.IsKeyDown(rl.KeyRight) {
		yaw += 1
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		yaw -= 1
	}
	if rl.IsKeyDown(rl.KeyUp) {
		pitch += 1
	}
	if rl.IsKeyDown(rl.KeyDown) {
		pitch -= 1
	}
	if yaw != 0 || pitch != 0 {
		g.cam.Rotate(yaw, pitch, dt)
	}
}
