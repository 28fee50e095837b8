package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"VoxelVision/cliente/internal/app"
	"VoxelVision/shared/config"
	"VoxelVision/shared/metrics"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configFile := flag.String("config", "", "Arquivo de configuração JSON ou YAML (padrão: config.json ao lado do executável)")
	seed := flag.Int64("seed", 0, "Seed do mundo (0 usa a do config ou o relógio)")
	width := flag.Int("world-width", 0, "Largura do mapa de alturas")
	depth := flag.Int("world-depth", 0, "Profundidade do mapa de alturas")
	terrain := flag.String("terrain", "", "Regras de terreno: empty ou strata")
	metricsAddr := flag.String("metrics", "", "Endereço do endpoint /metrics (ex: :2112)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_vv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO VOXEL VISION ---")
	}
	log.SetFlags(log.Ltime | log.Lshortfile)

	// Carregar configurações
	cfg, loadErr := config.Load(*configFile)
	if loadErr != nil {
		log.Printf("[Config] %v; usando padrões", loadErr)
	}

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
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
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Config] %v", err)
	}
	seedFromClock := cfg.ResolveSeed()
	if seedFromClock {
		log.Printf("[Config] Seed escolhida pelo relógio: %d", cfg.Seed)
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		srv := m.Serve(cfg.MetricsAddr)
		defer srv.Close()
	}

	// Criar e rodar a aplicação
	application := app.New(cfg, m)
	application.ConfigPath = *configFile
	application.SaveConfig = loadErr == nil // Não sobrescreve um arquivo com erro
	application.SeedFromClock = seedFromClock
	application.Run()
}
