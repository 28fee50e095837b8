package rlgpu

import (
	"testing"

	"VoxelVision/cliente/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanBatchesSingle(t *testing.T) {
	batches, err := planBatches(10*floatsPerBlock, 10*meshing.IndicesPerBlock)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, batch{firstBlock: 0, blocks: 10}, batches[0])
}

func TestPlanBatchesSplitsAt16BitLimit(t *testing.T) {
	blocks := maxBatchBlocks*2 + 5
	batches, err := planBatches(blocks*floatsPerBlock, blocks*meshing.IndicesPerBlock)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	assert.Equal(t, maxBatchBlocks, batches[0].blocks)
	assert.Equal(t, maxBatchBlocks, batches[1].firstBlock)
	assert.Equal(t, 5, batches[2].blocks)

	for _, b := range batches {
		assert.LessOrEqual(t, b.blocks*meshing.VerticesPerBlock, maxBatchVertices)
	}
}

func TestPlanBatchesRejectsMalformed(t *testing.T) {
	_, err := planBatches(floatsPerBlock+1, meshing.IndicesPerBlock)
	assert.Error(t, err)

	_, err = planBatches(2*floatsPerBlock, meshing.IndicesPerBlock)
	assert.Error(t, err)
}

func TestLocalIndicesRebase(t *testing.T) {
	b := meshing.NewBuilder(1)
	var indices []uint32
	for i := 0; i < 3; i++ {
		idx := b.BlockIndices(uint32(i * meshing.VerticesPerBlock))
		indices = append(indices, idx[:]...)
	}

	local := localIndices(indices, batch{firstBlock: 2, blocks: 1})
	require.Len(t, local, meshing.IndicesPerBlock)

	first := b.BlockIndices(0)
	for i := range local {
		assert.Equal(t, uint16(first[i]), local[i])
	}
}

func TestToMatrixColumnMajor(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	got := toMatrix(m)

	// Translação fica na última coluna: M12, M13, M14.
	assert.Equal(t, float32(1), got.M12)
	assert.Equal(t, float32(2), got.M13)
	assert.Equal(t, float32(3), got.M14)
	assert.Equal(t, float32(1), got.M15)
	assert.Equal(t, float32(0), got.M3)
}
