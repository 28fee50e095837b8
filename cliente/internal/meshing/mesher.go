package meshing

import (
	"VoxelVision/shared/mapdata"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	VerticesPerBlock = 8
	IndicesPerBlock  = 36
	floatsPerVertex  = 3
)

// cubeIndices são os 12 triângulos de um cubo sobre os 8 cantos emitidos
// por BlockVertices (0-3 face de cima, 4-7 face de baixo).
var cubeIndices = [IndicesPerBlock]uint32{
	0, 1, 3,
	1, 2, 3,
	4, 0, 5,
	0, 1, 5,
	2, 6, 5,
	1, 2, 5,
	3, 7, 6,
	2, 3, 6,
	3, 0, 4,
	7, 3, 4,
	4, 7, 6,
	4, 5, 6,
}

// GeometryData contém os buffers planos consumidos pela chamada de desenho.
type GeometryData struct {
	Vertices []float32 // 3 floats por vértice
	Indices  []uint32
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Indices) > 0 {
		clone.Indices = make([]uint32, len(g.Indices))
		copy(clone.Indices, g.Indices)
	}
	return clone
}

// VertexCount retorna o número de vértices (não de floats).
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / floatsPerVertex
}

// BlockCount retorna quantos blocos estão na malha.
func (g GeometryData) BlockCount() int {
	return g.VertexCount() / VerticesPerBlock
}

// Builder gera a malha de uma lista de blocos, sem culling nem fusão de faces:
// cada bloco emite seus 8 vértices e 36 índices próprios.
type Builder struct {
	BlockLength float32
	template    [IndicesPerBlock]uint32
}

// NewBuilder cria um construtor de malhas para blocos de lado blockLength.
func NewBuilder(blockLength float32) *Builder {
	if blockLength <= 0 {
		blockLength = mapdata.DefaultBlockLength
	}
	return &Builder{BlockLength: blockLength, template: cubeIndices}
}

// BlockVertices retorna os cantos do cubo: face de cima (y=0) e depois a de
// baixo (y=-l), ambas na mesma ordem em X/Z.
func (b *Builder) BlockVertices(topleft mgl32.Vec3) [VerticesPerBlock]mgl32.Vec3 {
	l := b.BlockLength
	return [VerticesPerBlock]mgl32.Vec3{
		topleft,
		topleft.Add(mgl32.Vec3{l, 0, 0}),
		topleft.Add(mgl32.Vec3{l, 0, l}),
		topleft.Add(mgl32.Vec3{0, 0, l}),
		topleft.Add(mgl32.Vec3{0, -l, 0}),
		topleft.Add(mgl32.Vec3{l, -l, 0}),
		topleft.Add(mgl32.Vec3{l, -l, l}),
		topleft.Add(mgl32.Vec3{0, -l, l}),
	}
}

// BlockIndices retorna o template do cubo deslocado por offset.
func (b *Builder) BlockIndices(offset uint32) [IndicesPerBlock]uint32 {
	out := b.template
	for i := range out {
		out[i] += offset
	}
	return out
}

// Build gera os buffers: o bloco i ocupa os vértices [8i, 8i+8).
func (b *Builder) Build(blocks []mapdata.Block) GeometryData {
	geo := GeometryData{
		Vertices: make([]float32, 0, len(blocks)*VerticesPerBlock*floatsPerVertex),
		Indices:  make([]uint32, 0, len(blocks)*IndicesPerBlock),
	}

	for i, block := range blocks {
		for _, v := range b.BlockVertices(block.Position) {
			geo.Vertices = append(geo.Vertices, v[0], v[1], v[2])
		}
		indices := b.BlockIndices(uint32(i * VerticesPerBlock))
		geo.Indices = append(geo.Indices, indices[:]...)
	}
	return geo
}
