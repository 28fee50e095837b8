package app

import (
	"log"

	"VoxelVision/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// updatePlayer move o jogador com WASD/Espaço/Shift e gira a visão com o mouse.
func (a *App) updatePlayer() {
	p := a.Player

	if rl.IsKeyDown(rl.KeyW) {
		p.MoveForward()
	}
	if rl.IsKeyDown(rl.KeyS) {
		p.MoveBackward()
	}
	if rl.IsKeyDown(rl.KeyA) {
		p.MoveLeft()
	}
	if rl.IsKeyDown(rl.KeyD) {
		p.MoveRight()
	}
	if rl.IsKeyDown(rl.KeySpace) {
		p.Ascend(p.Speed)
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		p.Ascend(-p.Speed)
	}

	// yaw = -dx*sens, pitch = dy*sens, em graus
	delta := rl.GetMouseDelta()
	sens := a.Config.MouseSensitivity
	p.Look(-mgl32.DegToRad(delta.X*sens), mgl32.DegToRad(delta.Y*sens))
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if a.State == StateViewing {
		if rl.IsKeyPressed(rl.KeyT) {
			a.plantTrees()
		}
		if rl.IsKeyPressed(rl.KeyM) {
			a.meshDirty = true
		}
		if rl.IsKeyPressed(rl.KeyF) {
			a.Player.Flying = !a.Player.Flying
			log.Printf("[App] Modo voo: %v", a.Player.Flying)
		}

		// Alternar projeção com P
		if rl.IsKeyPressed(rl.KeyP) {
			cam := a.Player.Camera
			if cam.Mode == camera.ModePerspective {
				cam.SetMode(camera.ModeOrthographic)
				log.Println("[Camera] Modo Ortográfico")
			} else {
				cam.SetMode(camera.ModePerspective)
				log.Println("[Camera] Modo Perspectiva")
			}
		}
	}

	// ESC: Alternar Pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StateViewing {
			a.State = StatePaused
			rl.EnableCursor()
			log.Println("[App] Jogo Pausado")
		} else if a.State == StatePaused {
			a.State = StateViewing
			rl.DisableCursor()
			log.Println("[App] Retomando Jogo")
		}
	}
}
