package mapdata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatField(value float64) NoiseField {
	return NoiseFunc(func(u, v float64) float64 { return value })
}

func testConfig(width, depth int) GeneratorConfig {
	cfg := DefaultGeneratorConfig()
	cfg.Width = width
	cfg.Depth = depth
	cfg.Scaler = 1
	cfg.Seed = 99
	return cfg
}

func TestColumnBlocks(t *testing.T) {
	gen := NewGenerator(testConfig(4, 4), flatField(0))

	blocks := gen.ColumnBlocks(HeightSample{X: 2, Y: 3, Height: 3.2})
	require.Len(t, blocks, 5)

	for n, b := range blocks {
		i := n - 2
		assert.InDelta(t, 2, b.Position.X(), 1e-6)
		assert.InDelta(t, float32(i+1), b.Position.Y(), 1e-6, "bloco %d", n)
		assert.InDelta(t, 2, b.Position.Z(), 1e-6) // y - l
		assert.Equal(t, BlockUnset, b.Type)
	}
}

func TestColumnBlocksCount(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		height float64
		want   int
	}{
		{"positiva", 4, 3.2, 5},
		{"zero", 4, 0, 2},
		{"negativa fracionária", 6, -1.5, 1},
		{"vazia", 4, -1.5, 0},
		{"muito baixa", 4, -30, 0},
		{"profundidade ímpar", 5, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(testConfig(1, tt.depth), flatField(0))
			got := gen.ColumnBlocks(HeightSample{X: 1, Y: 1, Height: tt.height})
			assert.Len(t, got, tt.want)
		})
	}
}

func TestColumnBlocksBlockLength(t *testing.T) {
	cfg := testConfig(2, 2)
	cfg.BlockLength = 0.5
	gen := NewGenerator(cfg, flatField(0))

	blocks := gen.ColumnBlocks(HeightSample{X: 1, Y: 1, Height: 2})
	require.Len(t, blocks, 3) // i = -1, 0, 1
	assert.InDelta(t, 0.0, blocks[0].Position.Y(), 1e-6)
	assert.InDelta(t, 1.0, blocks[2].Position.Y(), 1e-6)
	assert.InDelta(t, 0.5, blocks[0].Position.Z(), 1e-6)
}

func TestGenerateFollowsHeightMapOrder(t *testing.T) {
	gen := NewGenerator(testConfig(3, 2), flatField(2))

	world, err := gen.Generate(context.Background())
	require.NoError(t, err)

	// Cada coluna tem floor(2) + floor(2/2) = 3 blocos.
	require.Equal(t, 18, world.Count())
	assert.Equal(t, int64(1), world.Version)
	assert.NotEmpty(t, world.ID)

	i := 0
	for _, s := range gen.HeightMap().Samples() {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, float32(s.X), world.Blocks[i].Position.X(), 1e-6)
			assert.InDelta(t, float32(s.Y)-1, world.Blocks[i].Position.Z(), 1e-6)
			i++
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(16, 10)
	cfg.Scaler = 20

	a, err := NewGenerator(cfg, nil).Blocks(context.Background())
	require.NoError(t, err)
	b, err := NewGenerator(cfg, nil).Blocks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateCancelled(t *testing.T) {
	gen := NewGenerator(testConfig(8, 8), flatField(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	world, err := gen.Generate(ctx)
	assert.Nil(t, world)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTerrainSelectorIsPluggable(t *testing.T) {
	gen := NewGenerator(testConfig(1, 2), flatField(0))

	var seen []ColumnCoord
	gen.Terrain = TerrainFunc(func(biome *Biome, coord ColumnCoord) Attributes {
		seen = append(seen, coord)
		return Attributes{Type: BlockStone, Extra: map[string]string{"biome": biome.Name}}
	})

	blocks := gen.ColumnBlocks(HeightSample{X: 1, Y: 1, Height: 1.7})
	require.Len(t, blocks, 2)
	for _, b := range blocks {
		assert.Equal(t, BlockStone, b.Type)
		assert.Equal(t, "plains", b.Extra["biome"])
	}
	assert.Equal(t, []ColumnCoord{{X: 1, Y: 1, Level: -1, Top: 1}, {X: 1, Y: 1, Level: 0, Top: 1}}, seen)
}

func TestStrataTerrain(t *testing.T) {
	gen := NewGenerator(testConfig(1, 4), flatField(0))
	gen.Terrain = StrataTerrain{SoilDepth: 3}

	blocks := gen.ColumnBlocks(HeightSample{X: 1, Y: 1, Height: 3.2})
	require.Len(t, blocks, 5)

	want := []BlockType{BlockStone, BlockDirt, BlockDirt, BlockDirt, BlockGrass}
	for i, b := range blocks {
		assert.Equal(t, want[i], b.Type, "nível %d", i-2)
	}
}

func TestTerrainByName(t *testing.T) {
	assert.IsType(t, StrataTerrain{}, TerrainByName(TerrainStrata))
	assert.IsType(t, EmptyTerrain{}, TerrainByName(TerrainEmpty))
	assert.IsType(t, EmptyTerrain{}, TerrainByName("desconhecido"))
}

func TestGeneratorsDoNotShareBiome(t *testing.T) {
	a := NewGenerator(testConfig(2, 2), flatField(0))
	b := NewGenerator(testConfig(2, 2), flatField(0))

	a.Biome.TreeDensity = 9
	assert.Equal(t, 2, b.Biome.TreeDensity)
	assert.Equal(t, 2, Plains.TreeDensity)
	assert.Equal(t, Plains.Name, a.Biome.Name)
}
