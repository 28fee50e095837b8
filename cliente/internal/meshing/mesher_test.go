package meshing

import (
	"testing"

	"VoxelVision/shared/mapdata"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blocksAt(positions ...mgl32.Vec3) []mapdata.Block {
	blocks := make([]mapdata.Block, len(positions))
	for i, p := range positions {
		blocks[i] = mapdata.Block{Position: p}
	}
	return blocks
}

func TestBuildSizes(t *testing.T) {
	b := NewBuilder(1)
	for _, n := range []int{0, 1, 2, 7, 100} {
		positions := make([]mgl32.Vec3, n)
		for i := range positions {
			positions[i] = mgl32.Vec3{float32(i), 0, 0}
		}
		geo := b.Build(blocksAt(positions...))

		require.Len(t, geo.Vertices, 24*n)
		require.Len(t, geo.Indices, 36*n)
		assert.Equal(t, n, geo.BlockCount())
		for _, idx := range geo.Indices {
			if idx >= uint32(8*n) {
				t.Fatalf("índice %d fora do intervalo para %d blocos", idx, n)
			}
		}
	}
}

func TestBuildVertexOrder(t *testing.T) {
	b := NewBuilder(2)
	anchors := []mgl32.Vec3{{0, 0, 0}, {5, -3, 1.5}}
	geo := b.Build(blocksAt(anchors...))

	for i, a := range anchors {
		want := []mgl32.Vec3{
			a,
			a.Add(mgl32.Vec3{2, 0, 0}),
			a.Add(mgl32.Vec3{2, 0, 2}),
			a.Add(mgl32.Vec3{0, 0, 2}),
			a.Add(mgl32.Vec3{0, -2, 0}),
			a.Add(mgl32.Vec3{2, -2, 0}),
			a.Add(mgl32.Vec3{2, -2, 2}),
			a.Add(mgl32.Vec3{0, -2, 2}),
		}
		for k, w := range want {
			base := (i*8 + k) * 3
			got := mgl32.Vec3{geo.Vertices[base], geo.Vertices[base+1], geo.Vertices[base+2]}
			assert.Equal(t, w, got, "bloco %d, vértice %d", i, k)
		}
	}
}

func TestBuildIndicesAreOffsetPerBlock(t *testing.T) {
	b := NewBuilder(1)
	geo := b.Build(blocksAt(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0}))

	for i := 0; i < 3; i++ {
		chunk := geo.Indices[i*36 : (i+1)*36]
		for k, idx := range chunk {
			assert.Equal(t, cubeIndices[k]+uint32(i*8), idx)
			assert.GreaterOrEqual(t, idx, uint32(i*8))
			assert.Less(t, idx, uint32((i+1)*8))
		}
	}
}

func TestTemplateCoversAllFaces(t *testing.T) {
	b := NewBuilder(1)
	verts := b.BlockVertices(mgl32.Vec3{})
	tpl := b.BlockIndices(0)

	// Cada face do cubo unitário é um plano x, y ou z constante.
	faces := map[string]int{}
	for tri := 0; tri < 12; tri++ {
		p := [3]mgl32.Vec3{verts[tpl[tri*3]], verts[tpl[tri*3+1]], verts[tpl[tri*3+2]]}
		for axis, name := range []string{"x", "y", "z"} {
			if p[0][axis] != p[1][axis] || p[1][axis] != p[2][axis] {
				continue
			}
			side := "0"
			if p[0][axis] != 0 {
				side = "1"
			}
			faces[name+side]++
		}
	}
	for _, face := range []string{"x0", "x1", "y0", "y1", "z0", "z1"} {
		assert.Equal(t, 2, faces[face], "face %s", face)
	}
}

func TestBlockIndicesDoesNotMutateTemplate(t *testing.T) {
	b := NewBuilder(1)
	_ = b.BlockIndices(800)
	assert.Equal(t, cubeIndices, b.BlockIndices(0))
}

func TestGeometryClone(t *testing.T) {
	geo := NewBuilder(1).Build(blocksAt(mgl32.Vec3{}))
	clone := geo.Clone()
	clone.Vertices[0] = 42
	clone.Indices[0] = 42

	assert.Equal(t, float32(0), geo.Vertices[0])
	assert.Equal(t, uint32(0), geo.Indices[0])
	assert.Empty(t, GeometryData{}.Clone().Vertices)
}
