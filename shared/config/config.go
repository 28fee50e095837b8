package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"VoxelVision/shared/mapdata"

	"gopkg.in/yaml.v3"
)

// TreeRegion é uma área retangular onde árvores são plantadas.
type TreeRegion struct {
	XStart  int `json:"x_start" yaml:"x_start"`
	XEnd    int `json:"x_end" yaml:"x_end"`
	ZStart  int `json:"z_start" yaml:"z_start"`
	ZEnd    int `json:"z_end" yaml:"z_end"`
	Density int `json:"density" yaml:"density"`
}

// Region converte para a região usada pelo gerador.
func (t TreeRegion) Region() mapdata.Region {
	return mapdata.Region{
		X: mapdata.Interval{Start: t.XStart, End: t.XEnd},
		Z: mapdata.Interval{Start: t.ZStart, End: t.ZEnd},
	}
}

// Config armazena as configurações do VoxelVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width" yaml:"window_width"`
	WindowHeight int32  `json:"window_height" yaml:"window_height"`
	WindowTitle  string `json:"window_title" yaml:"window_title"`
	Fullscreen   bool   `json:"fullscreen" yaml:"fullscreen"`
	TargetFPS    int32  `json:"target_fps" yaml:"target_fps"`

	// Renderização
	FOV      float32    `json:"fov" yaml:"fov"`
	Near     float32    `json:"near" yaml:"near"`
	Far      float32    `json:"far" yaml:"far"`
	LightDir [3]float32 `json:"light_dir" yaml:"light_dir"`

	// Câmera / jogador
	MoveSpeed        float32    `json:"move_speed" yaml:"move_speed"`
	MouseSensitivity float32    `json:"mouse_sensitivity" yaml:"mouse_sensitivity"` // Graus por pixel
	Flying           bool       `json:"flying" yaml:"flying"`
	Spawn            [3]float32 `json:"spawn" yaml:"spawn"`

	// Mundo
	WorldWidth  int     `json:"world_width" yaml:"world_width"`
	WorldDepth  int     `json:"world_depth" yaml:"world_depth"`
	Octaves     float64 `json:"octaves" yaml:"octaves"`
	NoiseLayers int32   `json:"noise_layers" yaml:"noise_layers"`
	Seed        int64   `json:"seed" yaml:"seed"` // 0 escolhe pelo relógio
	HeightScale float32 `json:"height_scale" yaml:"height_scale"`
	BlockLength float32 `json:"block_length" yaml:"block_length"`
	Terrain     string  `json:"terrain" yaml:"terrain"` // "empty" ou "strata"

	Trees []TreeRegion `json:"trees" yaml:"trees"`

	// Métricas Prometheus; vazio desliga o endpoint
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info" yaml:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "VoxelVision",
		Fullscreen:   false,
		TargetFPS:    120,

		FOV:      60.0,
		Near:     0.1,
		Far:      100.0,
		LightDir: [3]float32{1, -0.5, -1},

		MoveSpeed:        0.1,
		MouseSensitivity: 1.0 / 3.0,
		Flying:           true,
		Spawn:            [3]float32{0, 0, 0},

		WorldWidth:  100,
		WorldDepth:  60,
		Octaves:     3.5,
		NoiseLayers: 3,
		Seed:        0,
		HeightScale: 20,
		BlockLength: 1,
		Terrain:     mapdata.TerrainEmpty,

		MetricsAddr: "",

		ShowDebugInfo: true,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load carrega as configurações de um arquivo JSON ou YAML.
// path vazio usa config.json ao lado do executável. Arquivo ausente não é erro.
// Em caso de erro retorna as configurações padrão junto com o erro.
func Load(path string) (*Config, error) {
	if path == "" {
		path = configPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("lendo %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("decodificando %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ErrInvalid é devolvido por Validate.
var ErrInvalid = errors.New("configuração inválida")

// Validate verifica os limites dos campos.
func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.WindowWidth > 0 && c.WindowHeight > 0, "janela precisa de tamanho positivo")
	check(c.FOV > 0 && c.FOV < 180, "fov deve estar em (0, 180)")
	check(c.Near > 0 && c.Far > c.Near, "planos de corte exigem 0 < near < far")
	check(c.MoveSpeed > 0, "move_speed deve ser positivo")
	check(c.WorldWidth >= 0 && c.WorldDepth >= 0, "dimensões do mundo não podem ser negativas")
	check(c.Octaves > 0, "octaves deve ser positivo")
	check(c.NoiseLayers > 0, "noise_layers deve ser positivo")
	check(c.BlockLength > 0, "block_length deve ser positivo")
	check(c.Terrain == mapdata.TerrainEmpty || c.Terrain == mapdata.TerrainStrata, "terrain deve ser empty ou strata")
	for i, t := range c.Trees {
		check(t.XStart <= t.XEnd && t.ZStart <= t.ZEnd, fmt.Sprintf("trees[%d]: intervalo invertido", i))
		check(t.Density >= 0, fmt.Sprintf("trees[%d]: densidade negativa", i))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Save salva as configurações. A extensão .yaml/.yml escolhe YAML.
func (c *Config) Save(path string) error {
	if path == "" {
		path = configPath()
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveSeed troca a seed 0 por uma derivada do relógio.
// Retorna true se a seed foi escolhida agora.
func (c *Config) ResolveSeed() bool {
	if c.Seed != 0 {
		return false
	}
	c.Seed = time.Now().UnixNano()
	if c.Seed == 0 {
		c.Seed = 1
	}
	return true
}

// GeneratorConfig monta os parâmetros do gerador de mundo.
func (c *Config) GeneratorConfig() mapdata.GeneratorConfig {
	return mapdata.GeneratorConfig{
		Width:       c.WorldWidth,
		Depth:       c.WorldDepth,
		Octaves:     c.Octaves,
		Layers:      c.NoiseLayers,
		Seed:        c.Seed,
		Scaler:      float64(c.HeightScale),
		BlockLength: c.BlockLength,
	}
}
