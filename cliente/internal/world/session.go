// Package world mantém o mundo gerado e a malha derivada dele, sem depender
// de janela ou GPU.
package world

import (
	"context"
	"fmt"
	"log"
	"time"

	"VoxelVision/cliente/internal/meshing"
	"VoxelVision/shared/config"
	"VoxelVision/shared/mapdata"
	"VoxelVision/shared/metrics"

	"github.com/go-gl/mathgl/mgl32"
)

// Session liga o gerador, o mundo, o cache de malhas e as métricas.
// Não é segura para uso concorrente; o app a usa só na thread principal
// depois que Generate termina.
type Session struct {
	Config *config.Config

	Generator *mapdata.Generator
	World     *mapdata.World
	Geometry  meshing.GeometryData

	builder *meshing.Builder
	store   *meshing.ResultStore
	metrics *metrics.Metrics
}

// NewSession prepara o gerador a partir da configuração. m pode ser nil.
func NewSession(cfg *config.Config, field mapdata.NoiseField, m *metrics.Metrics) *Session {
	gen := mapdata.NewGenerator(cfg.GeneratorConfig(), field)
	gen.Terrain = mapdata.TerrainByName(cfg.Terrain)

	return &Session{
		Config:    cfg,
		Generator: gen,
		builder:   meshing.NewBuilder(gen.Config.BlockLength),
		store:     meshing.NewResultStore(),
		metrics:   m,
	}
}

// Generate cria o terreno e planta as regiões de árvores da configuração.
func (s *Session) Generate(ctx context.Context) error {
	start := time.Now()

	w, err := s.Generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("gerando mundo: %w", err)
	}
	s.World = w

	elapsed := time.Since(start)
	log.Printf("[Mundo] Terreno %dx%d gerado em %v: %d blocos (mundo %s)",
		s.Generator.Config.Width, s.Generator.Config.Depth, elapsed, w.Count(), w.ID)
	if s.metrics != nil {
		s.metrics.ObserveGeneration(elapsed, w.Count())
	}

	for _, t := range s.Config.Trees {
		s.PlantTrees(t.Region(), t.Density)
	}
	return nil
}

// PlantTrees planta árvores numa região do mundo atual.
func (s *Session) PlantTrees(region mapdata.Region, density int) int {
	if s.World == nil {
		return 0
	}
	n := s.Generator.PlaceTrees(s.World, region, density)
	log.Printf("[Mundo] %d árvore(s) plantada(s) em X%v Z%v", n, region.X, region.Z)
	if s.metrics != nil {
		s.metrics.ObserveTrees(n, s.World.Count())
	}
	return n
}

// PlantAround planta árvores num quadrado de lado 2*radius centrado em pos.
func (s *Session) PlantAround(pos mgl32.Vec3, radius, density int) int {
	cx, cz := int(pos.X()), int(pos.Z())
	return s.PlantTrees(mapdata.Region{
		X: mapdata.Interval{Start: cx - radius, End: cx + radius},
		Z: mapdata.Interval{Start: cz - radius, End: cz + radius},
	}, density)
}

// RebuildMesh atualiza Geometry para a versão atual do mundo.
// Retorna true se a malha veio do cache.
func (s *Session) RebuildMesh() bool {
	if s.World == nil {
		s.Geometry = meshing.GeometryData{}
		return false
	}

	geo, cached := s.store.BuildWorld(s.builder, s.World)
	s.Geometry = geo
	if !cached {
		log.Printf("[Mesher] Malha v%d: %d vértices, %d índices",
			s.World.Version, geo.VertexCount(), len(geo.Indices))
	}
	if s.metrics != nil {
		s.metrics.ObserveMesh(geo.VertexCount(), len(geo.Indices), cached)
	}
	return cached
}

// NewMesher cria um mesher de fundo que compartilha o cache da sessão.
func (s *Session) NewMesher(workers int) *meshing.BlockMesher {
	return meshing.NewBlockMesher(workers, s.builder, s.store)
}

// RequestMesh pede em segundo plano a malha da versão atual do mundo.
func (s *Session) RequestMesh(m *meshing.BlockMesher) bool {
	if s.World == nil {
		return false
	}
	return m.RequestWorld(s.World)
}

// ApplyMesh aceita um resultado do mesher se ele corresponde à versão atual.
// Resultados de versões antigas são descartados.
func (s *Session) ApplyMesh(res meshing.Result) bool {
	if s.World == nil || res.Key.WorldID != s.World.ID || res.Key.Version != s.World.Version {
		return false
	}
	s.Geometry = res.Geometry
	if !res.Cached {
		log.Printf("[Mesher] Malha v%d: %d vértices, %d índices",
			res.Key.Version, res.Geometry.VertexCount(), len(res.Geometry.Indices))
	}
	if s.metrics != nil {
		s.metrics.ObserveMesh(res.Geometry.VertexCount(), len(res.Geometry.Indices), res.Cached)
	}
	return true
}

// Stats resume o mundo para HUD e relatórios.
type Stats struct {
	Blocks   int
	ByType   map[mapdata.BlockType]int
	Vertices int
	Indices  int
	Version  int64
}

// Stats retorna o resumo atual.
func (s *Session) Stats() Stats {
	st := Stats{
		Vertices: s.Geometry.VertexCount(),
		Indices:  len(s.Geometry.Indices),
	}
	if s.World != nil {
		st.Blocks = s.World.Count()
		st.ByType = s.World.CountByType()
		st.Version = s.World.Version
	}
	return st
}
