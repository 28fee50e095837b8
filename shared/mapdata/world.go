package mapdata

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// positionEpsilon é a tolerância usada para comparar posições de blocos.
const positionEpsilon = 1e-5

// World é a população de blocos gerada, mantida inteira em memória.
// A ordem dos blocos só importa para o layout da malha.
type World struct {
	ID        string // Identificador aleatório (logs e cache de malhas)
	Blocks    []Block
	HeightMap *HeightMap

	// Version é incrementada a cada mudança em Blocks. Uma malha construída
	// numa versão anterior está desatualizada.
	Version int64
}

// NewWorld cria o mundo a partir do terreno gerado.
func NewWorld(hmap *HeightMap, blocks []Block) *World {
	return &World{
		ID:        uuid.NewString(),
		Blocks:    blocks,
		HeightMap: hmap,
		Version:   1,
	}
}

// Add acrescenta blocos ao final da sequência.
func (w *World) Add(blocks ...Block) {
	if len(blocks) == 0 {
		return
	}
	w.Blocks = append(w.Blocks, blocks...)
	w.Version++
}

// Count retorna o número de blocos.
func (w *World) Count() int {
	return len(w.Blocks)
}

// BlocksAt retorna todos os blocos ancorados em pos. Sobreposições não são
// deduplicadas, então pode haver mais de um.
func (w *World) BlocksAt(pos mgl32.Vec3) []Block {
	var found []Block
	for _, b := range w.Blocks {
		if samePosition(b.Position, pos) {
			found = append(found, b)
		}
	}
	return found
}

// CountByType agrupa os blocos por material.
func (w *World) CountByType() map[BlockType]int {
	counts := make(map[BlockType]int)
	for _, b := range w.Blocks {
		counts[b.Type]++
	}
	return counts
}

// samePosition compara com tolerância absoluta por eixo.
func samePosition(a, b mgl32.Vec3) bool {
	for i := range a {
		if d := a[i] - b[i]; d > positionEpsilon || d < -positionEpsilon {
			return false
		}
	}
	return true
}
