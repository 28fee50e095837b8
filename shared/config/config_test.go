package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nao_existe.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadJSONOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"world_width": 20, "seed": 42, "terrain": "strata"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.WorldWidth)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "strata", cfg.Terrain)
	assert.Equal(t, 60, cfg.WorldDepth)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
world_depth: 10
trees:
  - x_start: 0
    x_end: 20
    z_start: 0
    z_end: 20
    density: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.WorldDepth)
	require.Len(t, cfg.Trees, 1)
	assert.Equal(t, TreeRegion{XEnd: 20, ZEnd: 20, Density: 2}, cfg.Trees[0])
}

func TestLoadInvalidFallsBack(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"json quebrado", "config.json", `{"world_width":`},
		{"far antes de near", "config.json", `{"near": 10, "far": 1}`},
		{"terreno desconhecido", "config.yml", "terrain: lava\n"},
		{"terreno sem nome aceito", "config.json", `{"terrain": "none"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestValidateReportsErrInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlockLength = 0
	cfg.Trees = []TreeRegion{{XStart: 5, XEnd: 1}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "block_length")
	assert.Contains(t, err.Error(), "trees[0]")
}

func TestSaveRoundTripYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Trees = []TreeRegion{{XEnd: 10, ZEnd: 10, Density: 1}}

	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, cfg.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, cfg, loaded, name)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ResolveSeed())
	assert.NotZero(t, cfg.Seed)

	seed := cfg.Seed
	assert.False(t, cfg.ResolveSeed())
	assert.Equal(t, seed, cfg.Seed)
}

func TestGeneratorConfigMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	gc := cfg.GeneratorConfig()

	assert.Equal(t, 100, gc.Width)
	assert.Equal(t, 60, gc.Depth)
	assert.Equal(t, 3.5, gc.Octaves)
	assert.Equal(t, int64(99), gc.Seed)
	assert.Equal(t, 20.0, gc.Scaler)

	r := TreeRegion{XStart: 1, XEnd: 5, ZStart: 2, ZEnd: 6}.Region()
	assert.Equal(t, 1, r.X.Start)
	assert.Equal(t, 6, r.Z.End)
}
