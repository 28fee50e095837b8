package app

import (
	"context"
	"log"
	"runtime"

	"VoxelVision/cliente/internal/camera"
	"VoxelVision/cliente/internal/meshing"
	"VoxelVision/cliente/internal/player"
	"VoxelVision/cliente/internal/render"
	"VoxelVision/cliente/internal/render/rlgpu"
	"VoxelVision/cliente/internal/world"
	"VoxelVision/shared/config"
	"VoxelVision/shared/metrics"
	"VoxelVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Gerando o mundo
	StateViewing                 // Explorando
	StatePaused                  // Pausado
)

// App é a aplicação principal do VoxelVision.
type App struct {
	Config  *config.Config
	State   AppState
	Metrics *metrics.Metrics

	// Salvamento das configurações ao sair
	ConfigPath    string // Vazio usa config.json ao lado do executável
	SaveConfig    bool
	SeedFromClock bool // A seed do relógio não é gravada

	Player *player.Player

	session  *world.Session
	mesher   *meshing.BlockMesher
	renderer *render.Renderer
	backend  *rlgpu.Backend

	// Resultado da geração em segundo plano
	genDone chan error
	cancel  context.CancelFunc

	frameCount    int
	meshDirty     bool
	lastAction    string // Mostrado no HUD
	LoadingStatus string
}

// New cria uma nova instância da aplicação. m pode ser nil.
func New(cfg *config.Config, m *metrics.Metrics) *App {
	cam := camera.NewWithClip(cfg.FOV, util.FromArray(cfg.Spawn),
		float32(cfg.WindowWidth)/float32(cfg.WindowHeight), cfg.Near, cfg.Far)
	p := player.New(util.FromArray(cfg.Spawn), cam)
	p.Speed = cfg.MoveSpeed
	p.Flying = cfg.Flying

	return &App{
		Config:        cfg,
		State:         StateLoading,
		Metrics:       m,
		Player:        p,
		session:       world.NewSession(cfg, nil, m),
		genDone:       make(chan error, 1),
		LoadingStatus: "Gerando terreno...",
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC pausa em vez de fechar

	log.Println("[App] Janela inicializada com sucesso")
	log.Printf("[App] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	backend, err := rlgpu.NewBackend()
	if err != nil {
		rl.CloseWindow()
		log.Fatalf("[Renderer] Não foi possível criar o backend: %v", err)
	}
	a.backend = backend
	a.renderer = render.NewRenderer(backend)
	a.renderer.LightDir = util.FromArray(a.Config.LightDir)
	rl.DisableBackfaceCulling()

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go a.generateWorld(ctx)

	workers := max(runtime.NumCPU()/2, 1)
	log.Printf("[App] Iniciando Mesher com %d workers (CPU Cores: %d)", workers, runtime.NumCPU())
	a.mesher = a.session.NewMesher(workers)

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	if rl.IsWindowResized() && rl.GetScreenHeight() > 0 {
		a.Player.Camera.Aspect = float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	}

	switch a.State {
	case StateLoading:
		a.processGeneration()
	case StateViewing:
		a.updatePlayer()
		a.updateInput()
		if a.meshDirty {
			a.requestMesh()
		}
		a.processMesherResults()
	case StatePaused:
		a.updateInput()
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.cancel != nil {
		a.cancel()
	}
	if a.mesher != nil {
		a.mesher.Stop()
	}
	if a.backend != nil {
		a.backend.Unload()
	}

	if a.SaveConfig {
		if err := a.saveConfig(); err != nil {
			log.Printf("[Config] Erro ao salvar configurações: %v", err)
		}
	}
}

// saveConfig grava a configuração atual. Uma seed sorteada pelo relógio volta
// a 0 para que a próxima execução sorteie outra.
func (a *App) saveConfig() error {
	out := *a.Config
	if a.SeedFromClock {
		out.Seed = 0
	}
	return out.Save(a.ConfigPath)
}
