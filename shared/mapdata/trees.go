package mapdata

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	canopyLevel       = 5  // A copa fica na altura do 5º tronco
	outerCanopyLength = 2
	innerCanopyLength = 1

	treeStepX     = 12
	treeStepZ     = 8
	maxTreeOffset = 10
	minTrunk      = 2
	maxTrunk      = 8
)

// Interval é um intervalo inteiro [Start, End).
type Interval struct {
	Start, End int
}

// Region é uma área retangular alinhada aos eixos X e Z.
type Region struct {
	X, Z Interval
}

// SquareAround gera, para cada i em [0, length), seis pontos ao redor de pos:
// ±i em X, ±i em X e Z juntos (diagonal) e ±i em Z.
// Não é o perímetro de um quadrado; em i=0 os seis pontos coincidem com pos.
func SquareAround(pos mgl32.Vec3, length int, blockLength float32) [][]mgl32.Vec3 {
	rings := make([][]mgl32.Vec3, 0, max(length, 0))
	for i := 0; i < length; i++ {
		d := blockLength * float32(i)
		rings = append(rings, []mgl32.Vec3{
			pos.Add(mgl32.Vec3{d, 0, 0}),
			pos.Add(mgl32.Vec3{-d, 0, 0}),
			pos.Add(mgl32.Vec3{d, 0, d}),
			pos.Add(mgl32.Vec3{-d, 0, -d}),
			pos.Add(mgl32.Vec3{0, 0, d}),
			pos.Add(mgl32.Vec3{0, 0, -d}),
		})
	}
	return rings
}

// Tree monta uma árvore: height troncos de carvalho a partir de um bloco acima
// da âncora e a copa de folhas em volta de anchor + (0, 5l, 0).
// Blocos sobrepostos não são removidos.
func (g *Generator) Tree(height int, anchor mgl32.Vec3) []Block {
	l := g.Config.BlockLength

	blocks := make([]Block, 0, max(height, 0)+6*(outerCanopyLength+innerCanopyLength))
	for i := 1; i <= height; i++ {
		pos := anchor.Add(mgl32.Vec3{0, float32(i) * l, 0})
		blocks = append(blocks, Block{Position: pos, Type: BlockOakWood})
	}

	leafStart := anchor.Add(mgl32.Vec3{0, canopyLevel * l, 0})
	for _, length := range []int{outerCanopyLength, innerCanopyLength} {
		for _, ring := range SquareAround(leafStart, length, l) {
			for _, pos := range ring {
				blocks = append(blocks, Block{Position: pos, Type: BlockOakLeaf})
			}
		}
	}
	return blocks
}

// PlaceTrees espalha árvores na região e as adiciona ao mundo.
// Repete density vezes: sorteia deslocamentos em [0,10] e percorre X a passos
// de 12 e Z a passos de 8. Posições sem altura no mapa são ignoradas.
// Retorna quantas árvores foram colocadas.
func (g *Generator) PlaceTrees(w *World, region Region, density int) int {
	placed := 0
	for n := 0; n < density; n++ {
		xOffset := g.rng.IntN(maxTreeOffset + 1)
		zOffset := g.rng.IntN(maxTreeOffset + 1)

		for x := region.X.Start + xOffset; x < region.X.End; x += treeStepX {
			for z := region.Z.Start + zOffset; z < region.Z.End; z += treeStepZ {
				s, ok := w.HeightMap.Lookup(x, z)
				if !ok {
					continue
				}
				height := minTrunk + g.rng.IntN(maxTrunk-minTrunk+1)
				anchor := mgl32.Vec3{float32(x), float32(s.Height), float32(z)}
				w.Add(g.Tree(height, anchor)...)
				placed++
			}
		}
	}
	return placed
}
