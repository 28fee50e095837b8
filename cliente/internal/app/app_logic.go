package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raio e densidade das árvores plantadas com T.
const (
	plantRadius  = 12
	plantDensity = 1
)

// generateWorld roda em segundo plano e sinaliza o fim em genDone.
func (a *App) generateWorld(ctx context.Context) {
	a.genDone <- a.session.Generate(ctx)
}

// processGeneration verifica se a geração terminou, sem bloquear o frame.
func (a *App) processGeneration() {
	select {
	case err := <-a.genDone:
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Fatalf("[Mundo] %v", err)
		}
		a.session.RebuildMesh()
		a.State = StateViewing
		rl.DisableCursor()
		log.Printf("[App] Mundo pronto: %d blocos", a.session.World.Count())
	default:
	}
}

// requestMesh pede a malha nova ao mesher de fundo. Se a fila estiver cheia
// tenta de novo no próximo frame.
func (a *App) requestMesh() {
	if a.session.RequestMesh(a.mesher) {
		a.meshDirty = false
	}
}

// processMesherResults consome resultados do mesher sem bloquear o frame.
func (a *App) processMesherResults() {
	for {
		select {
		case res := <-a.mesher.Results():
			if !a.session.ApplyMesh(res) {
				log.Printf("[Mesher] Malha v%d descartada (mundo já está em v%d)",
					res.Key.Version, a.session.World.Version)
			}
		default:
			return
		}
	}
}

// plantTrees planta árvores ao redor do jogador.
func (a *App) plantTrees() {
	n := a.session.PlantAround(a.Player.Position, plantRadius, plantDensity)
	if n > 0 {
		a.meshDirty = true
	}
	a.lastAction = fmt.Sprintf("%d árvore(s) plantada(s)", n)
}
