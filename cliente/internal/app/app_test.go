package app

import (
	"path/filepath"
	"testing"

	"VoxelVision/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownSavesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 1234
	cfg.ShowDebugInfo = false
	path := filepath.Join(t.TempDir(), "config.yaml")

	a := &App{Config: cfg, ConfigPath: path, SaveConfig: true}
	a.shutdown()

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), loaded.Seed)
	assert.False(t, loaded.ShowDebugInfo)
}

func TestShutdownDropsClockSeed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 987654321
	path := filepath.Join(t.TempDir(), "config.json")

	a := &App{Config: cfg, ConfigPath: path, SaveConfig: true, SeedFromClock: true}
	a.shutdown()

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Zero(t, loaded.Seed)
	// A sessão em memória mantém a seed sorteada
	assert.Equal(t, int64(987654321), cfg.Seed)
}

func TestShutdownWithoutSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	a := &App{Config: config.DefaultConfig(), ConfigPath: path}
	a.shutdown()

	assert.NoFileExists(t, path)
}
