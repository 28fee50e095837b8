package rlgpu

import (
	"fmt"

	"VoxelVision/cliente/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// O raylib desenha com índices de 16 bits, então cada lote tem no máximo
// 65536 vértices. Os lotes são alinhados por bloco para que nenhum índice
// cruze a fronteira de um lote.
const (
	maxBatchVertices = 1 << 16
	maxBatchBlocks   = maxBatchVertices / meshing.VerticesPerBlock

	floatsPerBlock = meshing.VerticesPerBlock * 3
)

// batch é uma fatia contígua da malha do mundo.
type batch struct {
	firstBlock int
	blocks     int
}

// vertexRange retorna o intervalo de floats do lote no vertex buffer.
func (b batch) vertexRange() (int, int) {
	return b.firstBlock * floatsPerBlock, (b.firstBlock + b.blocks) * floatsPerBlock
}

// indexRange retorna o intervalo do lote no index buffer.
func (b batch) indexRange() (int, int) {
	return b.firstBlock * meshing.IndicesPerBlock, (b.firstBlock + b.blocks) * meshing.IndicesPerBlock
}

// planBatches divide a geometria em lotes que cabem em índices de 16 bits.
func planBatches(vertexFloats, indexCount int) ([]batch, error) {
	if vertexFloats%floatsPerBlock != 0 || indexCount%meshing.IndicesPerBlock != 0 {
		return nil, fmt.Errorf("geometria fora do formato de blocos: %d floats, %d índices", vertexFloats, indexCount)
	}
	blocks := vertexFloats / floatsPerBlock
	if blocks != indexCount/meshing.IndicesPerBlock {
		return nil, fmt.Errorf("geometria inconsistente: %d blocos de vértices, %d de índices",
			blocks, indexCount/meshing.IndicesPerBlock)
	}

	var out []batch
	for first := 0; first < blocks; first += maxBatchBlocks {
		n := blocks - first
		if n > maxBatchBlocks {
			n = maxBatchBlocks
		}
		out = append(out, batch{firstBlock: first, blocks: n})
	}
	return out, nil
}

// localIndices rebaseia os índices do lote para o seu primeiro vértice.
func localIndices(indices []uint32, b batch) []uint16 {
	start, end := b.indexRange()
	base := uint32(b.firstBlock * meshing.VerticesPerBlock)
	out := make([]uint16, end-start)
	for i, idx := range indices[start:end] {
		out[i] = uint16(idx - base)
	}
	return out
}

// toMatrix converte uma matriz do mathgl para o raylib.
// Os dois são column-major: m[i] vai para Mi.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
