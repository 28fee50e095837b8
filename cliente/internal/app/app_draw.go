package app

import (
	"errors"
	"fmt"
	"log"
	"math"

	"VoxelVision/cliente/internal/render"
	"VoxelVision/shared/mapdata"
	"VoxelVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	switch a.State {
	case StateLoading:
		a.drawLoadingScreen()
	default:
		a.drawScene()
		a.drawHUD()
		if a.State == StatePaused {
			a.drawPauseMenu()
		}
	}

	rl.EndDrawing()
}

// drawScene submete a malha do mundo. BeginMode3D só liga o teste de
// profundidade; as matrizes vêm da nossa câmera.
func (a *App) drawScene() {
	cam := a.Player.Camera
	rl.BeginMode3D(util.Camera3D(cam.Position, cam.LookDir(), cam.Twist, a.Config.FOV))

	err := a.renderer.Draw(cam, a.session.Geometry)
	if err != nil {
		if a.Metrics != nil {
			a.Metrics.DrawErrors.Inc()
		}
		if errors.Is(err, render.ErrResourceExhausted) || errors.Is(err, render.ErrShaderFailure) {
			log.Fatalf("[Renderer] %v", err)
		}
		log.Printf("[Renderer] Erro no frame %d: %v", a.frameCount, err)
	} else if a.Metrics != nil && len(a.session.Geometry.Indices) > 0 {
		a.Metrics.FramesSubmitted.Inc()
	}

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(340)
	height := int32(220)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	mode := "Voando"
	if !a.Player.Flying {
		mode = "Andando"
	}
	rl.DrawText(mode, x+230, y+10, 20, rl.SkyBlue)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Localização
	rl.DrawText("LOCALIZAÇÃO", x+10, y+45, 12, rl.Gray)
	pos := a.Player.Position
	look := a.Player.Camera.LookDir()
	rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", pos.X(), pos.Y(), pos.Z()), x+10, y+60, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Olhar: (%.2f, %.2f, %.2f)", look.X(), look.Y(), look.Z()), x+10, y+80, 14, rl.LightGray)

	rl.DrawLine(x+10, y+100, x+width-10, y+100, rl.NewColor(100, 100, 100, 100))

	// Mundo
	st := a.session.Stats()
	rl.DrawText(fmt.Sprintf("Blocos: %d (v%d)", st.Blocks, st.Version), x+10, y+110, 14, rl.Gold)
	rl.DrawText(fmt.Sprintf("Grama %d | Terra %d | Pedra %d | Folhas %d",
		st.ByType[mapdata.BlockGrass], st.ByType[mapdata.BlockDirt],
		st.ByType[mapdata.BlockStone], st.ByType[mapdata.BlockOakLeaf]), x+10, y+125, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Malha: %d vértices, %d lote(s)", st.Vertices, a.backend.Batches()), x+10, y+140, 14, rl.LightGray)

	rl.DrawLine(x+10, y+160, x+width-10, y+160, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("CONTROLES", x+10, y+170, 12, rl.Gray)
	rl.DrawText("WASD: Mover | Espaço/Shift: Subir/Descer", x+10, y+185, 14, rl.LightGray)
	rl.DrawText("T: Árvores | M: Malha | P: Projeção | F: Voo", x+10, y+200, 14, rl.SkyBlue)

	if a.lastAction != "" {
		rl.DrawText(a.lastAction, 10, int32(rl.GetScreenHeight())-30, 18, rl.NewColor(200, 200, 200, 200))
	}
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(200)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	menuTitle := "PAUSADO"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StateViewing
		rl.DisableCursor()
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor = util.Brighten(color, 30)
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (a *App) drawLoadingScreen() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(20, 20, 25, 255))

	title := "VOXELVISION"
	titleWidth := rl.MeasureText(title, 40)
	rl.DrawText(title, (screenWidth-titleWidth)/2, screenHeight/2-60, 40, rl.Gold)

	// Status pulsa enquanto o terreno é gerado
	pulse := (float32(math.Sin(rl.GetTime()*3)) + 1) / 2
	statusColor := rl.Fade(rl.LightGray, util.Lerp(0.4, 1, pulse))

	statusWidth := rl.MeasureText(a.LoadingStatus, 18)
	rl.DrawText(a.LoadingStatus, (screenWidth-statusWidth)/2, screenHeight/2+20, 18, statusColor)
}
