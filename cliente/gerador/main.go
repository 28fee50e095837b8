// Comando gerador gera um mundo sem janela e imprime um relatório do terreno
// e da malha que seria enviada à GPU.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"

	"VoxelVision/cliente/internal/world"
	"VoxelVision/shared/config"
	"VoxelVision/shared/metrics"

	"gopkg.in/yaml.v3"
)

// Report é o resumo impresso no final.
type Report struct {
	WorldID   string         `json:"world_id" yaml:"world_id"`
	Seed      int64          `json:"seed" yaml:"seed"`
	Width     int            `json:"width" yaml:"width"`
	Depth     int            `json:"depth" yaml:"depth"`
	Terrain   string         `json:"terrain" yaml:"terrain"`
	Blocks    int            `json:"blocks" yaml:"blocks"`
	ByType    map[string]int `json:"by_type" yaml:"by_type"`
	MinHeight float64        `json:"min_height" yaml:"min_height"`
	MaxHeight float64        `json:"max_height" yaml:"max_height"`
	Vertices  int            `json:"vertices" yaml:"vertices"`
	Indices   int            `json:"indices" yaml:"indices"`
	GPUBytes  int            `json:"gpu_bytes" yaml:"gpu_bytes"`
}

func main() {
	configFile := flag.String("config", "", "Arquivo de configuração JSON ou YAML")
	seed := flag.Int64("seed", 0, "Seed do mundo (0 usa a do config ou o relógio)")
	width := flag.Int("width", 0, "Largura do mapa de alturas")
	depth := flag.Int("depth", 0, "Profundidade do mapa de alturas")
	terrain := flag.String("terrain", "", "Regras de terreno: empty ou strata")
	format := flag.String("format", "text", "Formato do relatório: text, json ou yaml")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Printf("[Config] %v; usando padrões", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *width > 0 {
		cfg.WorldWidth = *width
	}
	if *depth > 0 {
		cfg.WorldDepth = *depth
	}
	if *terrain != "" {
		cfg.Terrain = *terrain
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Config] %v", err)
	}
	if cfg.ResolveSeed() {
		log.Printf("[Config] Seed escolhida pelo relógio: %d", cfg.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := world.NewSession(cfg, nil, metrics.New())
	if err := s.Generate(ctx); err != nil {
		log.Fatalf("[Mundo] %v", err)
	}
	s.RebuildMesh()

	if err := writeReport(os.Stdout, buildReport(s), *format); err != nil {
		log.Fatalf("[Gerador] %v", err)
	}
}

func buildReport(s *world.Session) Report {
	st := s.Stats()
	r := Report{
		WorldID:  s.World.ID,
		Seed:     s.Config.Seed,
		Width:    s.Config.WorldWidth,
		Depth:    s.Config.WorldDepth,
		Terrain:  s.Config.Terrain,
		Blocks:   st.Blocks,
		ByType:   make(map[string]int, len(st.ByType)),
		Vertices: st.Vertices,
		Indices:  st.Indices,
		GPUBytes: len(s.Geometry.Vertices)*4 + len(s.Geometry.Indices)*4,
	}
	for t, n := range st.ByType {
		name := t.String()
		if name == "" {
			name = "unset"
		}
		r.ByType[name] = n
	}

	for i, h := range s.World.HeightMap.Samples() {
		if i == 0 || h.Height < r.MinHeight {
			r.MinHeight = h.Height
		}
		if i == 0 || h.Height > r.MaxHeight {
			r.MaxHeight = h.Height
		}
	}
	return r
}

func writeReport(w io.Writer, r Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	case "text":
		fmt.Fprintf(w, "Mundo %s (seed %d, %dx%d, terreno %s)\n", r.WorldID, r.Seed, r.Width, r.Depth, r.Terrain)
		fmt.Fprintf(w, "Alturas: %.2f a %.2f\n", r.MinHeight, r.MaxHeight)
		fmt.Fprintf(w, "Blocos: %d\n", r.Blocks)
		names := make([]string, 0, len(r.ByType))
		for name := range r.ByType {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-12s %d\n", name, r.ByType[name])
		}
		fmt.Fprintf(w, "Malha: %d vértices, %d índices, %d bytes\n", r.Vertices, r.Indices, r.GPUBytes)
		return nil
	default:
		return fmt.Errorf("formato desconhecido %q", format)
	}
}
