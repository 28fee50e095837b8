package mapdata

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// GeneratorConfig agrupa os parâmetros de geração do mundo.
type GeneratorConfig struct {
	Width, Depth int     // Dimensões do mapa de alturas
	Octaves      float64 // Frequência do ruído
	Layers       int32   // Somas fractais do Perlin
	Seed         int64
	Scaler       float64 // Multiplicador da altura
	BlockLength  float32
}

// DefaultGeneratorConfig retorna os valores usados pelo cliente.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:       100,
		Depth:       60,
		Octaves:     3.5,
		Layers:      3,
		Scaler:      20,
		BlockLength: DefaultBlockLength,
	}
}

// Generator transforma o mapa de alturas na população de blocos do mundo.
// É dono exclusivo do HeightMap e da sequência de blocos que produz.
type Generator struct {
	Config  GeneratorConfig
	Terrain TerrainSelector // Regras de material das colunas
	Biome   *Biome

	hmap *HeightMap
	rng  *rand.Rand
}

// NewGenerator cria o gerador e constrói o mapa de alturas uma única vez.
// Se field for nil, usa um PerlinField com a seed da configuração.
func NewGenerator(cfg GeneratorConfig, field NoiseField) *Generator {
	if cfg.BlockLength <= 0 {
		cfg.BlockLength = DefaultBlockLength
	}
	if field == nil {
		field = NewPerlinField(cfg.Octaves, cfg.Layers, cfg.Seed)
	}

	biome := Plains
	return &Generator{
		Config:  cfg,
		Terrain: EmptyTerrain{},
		Biome:   &biome,
		hmap:    BuildHeightMap(field, cfg.Width, cfg.Depth, cfg.Scaler),
		rng:     rand.New(rand.NewPCG(uint64(cfg.Seed), 0x9e3779b97f4a7c15)),
	}
}

// HeightMap retorna o mapa de alturas construído na criação.
func (g *Generator) HeightMap() *HeightMap {
	return g.hmap
}

// ColumnBlocks gera a pilha vertical de uma célula.
// i vai de -floor(Depth/2) até floor(altura) exclusivo; colunas muito baixas
// resultam vazias, o que não é erro.
func (g *Generator) ColumnBlocks(s HeightSample) []Block {
	l := g.Config.BlockLength
	top := int(math.Floor(s.Height))
	start := -(g.Config.Depth / 2)
	if top <= start {
		return nil
	}

	blocks := make([]Block, 0, top-start)
	for i := start; i < top; i++ {
		pos := mgl32.Vec3{float32(s.X), float32(i+1) * l, float32(s.Y) - l}
		attrs := g.Terrain.Choose(g.Biome, ColumnCoord{X: s.X, Y: s.Y, Level: i, Top: top})
		blocks = append(blocks, NewBlock(pos, attrs))
	}
	return blocks
}

// Blocks gera todas as colunas na ordem do mapa de alturas.
// O contexto é verificado entre colunas.
func (g *Generator) Blocks(ctx context.Context) ([]Block, error) {
	var blocks []Block
	for _, s := range g.hmap.Samples() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("geração interrompida na coluna (%d, %d): %w", s.X, s.Y, err)
		}
		blocks = append(blocks, g.ColumnBlocks(s)...)
	}
	return blocks, nil
}

// Generate produz o mundo completo (somente terreno; árvores via PlaceTrees).
func (g *Generator) Generate(ctx context.Context) (*World, error) {
	blocks, err := g.Blocks(ctx)
	if err != nil {
		return nil, err
	}
	return NewWorld(g.hmap, blocks), nil
}
