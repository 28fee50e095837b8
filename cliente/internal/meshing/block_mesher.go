package meshing

import (
	"log"
	"sync"

	"VoxelVision/shared/mapdata"
)

// Request pede a malha de uma versão do mundo.
// Blocks é um instantâneo; o mundo só acrescenta blocos, então o prefixo não muda.
type Request struct {
	Key    ResultKey
	Blocks []mapdata.Block
}

// Result é a malha pronta de uma Request.
type Result struct {
	Key      ResultKey
	Geometry GeometryData
	Cached   bool
}

// BlockMesher constrói malhas em goroutines de fundo.
type BlockMesher struct {
	builder     *Builder
	requests    chan Request
	results     chan Result
	stop        chan struct{}
	wg          sync.WaitGroup
	ResultStore *ResultStore
	pending     map[ResultKey]bool
	pendingMu   sync.Mutex
}

// NewBlockMesher cria e inicia um novo mesher.
func NewBlockMesher(workers int, builder *Builder, resultStore *ResultStore) *BlockMesher {
	if workers < 1 {
		workers = 1
	}
	m := &BlockMesher{
		builder:     builder,
		requests:    make(chan Request, 16),
		results:     make(chan Result, 16),
		stop:        make(chan struct{}),
		ResultStore: resultStore,
		pending:     make(map[ResultKey]bool),
	}

	m.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go m.worker()
	}
	return m
}

// RequestWorld enfileira a versão atual do mundo.
func (m *BlockMesher) RequestWorld(w *mapdata.World) bool {
	return m.Enqueue(Request{
		Key:    ResultKey{WorldID: w.ID, Version: w.Version},
		Blocks: w.Blocks[:len(w.Blocks):len(w.Blocks)],
	})
}

// Enqueue retorna false se a chave já está pendente ou a fila está cheia.
func (m *BlockMesher) Enqueue(req Request) bool {
	m.pendingMu.Lock()
	if m.pending[req.Key] {
		m.pendingMu.Unlock()
		return false
	}
	m.pending[req.Key] = true
	m.pendingMu.Unlock()

	select {
	case m.requests <- req:
		return true
	default:
		// Se a fila estiver cheia, remove do pendente para tentar depois
		m.done(req.Key)
		return false
	}
}

// Results entrega as malhas prontas.
func (m *BlockMesher) Results() <-chan Result {
	return m.results
}

// Stop encerra os workers e espera que terminem.
func (m *BlockMesher) Stop() {
	close(m.stop)
	m.wg.Wait()
}

func (m *BlockMesher) done(key ResultKey) {
	m.pendingMu.Lock()
	delete(m.pending, key)
	m.pendingMu.Unlock()
}

func (m *BlockMesher) worker() {
	defer m.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro no Mesher Worker: %v", r)
		}
	}()

	for {
		select {
		case req := <-m.requests:
			res := m.Generate(req)
			m.done(req.Key)
			select {
			case m.results <- res:
			case <-m.stop:
				return
			}
		case <-m.stop:
			return
		}
	}
}

// Generate constrói a malha da requisição, consultando o cache antes.
func (m *BlockMesher) Generate(req Request) Result {
	if m.ResultStore != nil {
		if geo, ok := m.ResultStore.Get(req.Key); ok {
			return Result{Key: req.Key, Geometry: geo, Cached: true}
		}
	}

	geo := m.builder.Build(req.Blocks)
	if m.ResultStore != nil {
		m.ResultStore.Store(req.Key, geo)
	}
	return Result{Key: req.Key, Geometry: geo}
}
