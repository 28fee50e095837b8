package meshing

import (
	"sync"

	"VoxelVision/shared/mapdata"
)

// ResultKey identifica a versão do mundo a partir da qual a malha foi gerada.
type ResultKey struct {
	WorldID string
	Version int64
}

// ResultStore armazena as malhas geradas na RAM para evitar re-processamento.
type ResultStore struct {
	mu      sync.RWMutex
	results map[ResultKey]GeometryData
}

// NewResultStore cria um novo repositório de resultados.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[ResultKey]GeometryData),
	}
}

// Get retorna a malha se ela existir para exatamente esta versão do mundo.
func (s *ResultStore) Get(key ResultKey) (GeometryData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	geo, ok := s.results[key]
	if !ok {
		return GeometryData{}, false
	}
	// Retornamos um clone para evitar que modificações externas afetem o cache
	return geo.Clone(), true
}

// Store salva a malha e descarta as versões antigas do mesmo mundo.
func (s *ResultStore) Store(key ResultKey, geo GeometryData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.results {
		if k.WorldID == key.WorldID && k.Version != key.Version {
			delete(s.results, k)
		}
	}
	s.results[key] = geo.Clone()
}

// Len retorna o número de malhas guardadas.
func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Clear limpa todo o cache de resultados.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[ResultKey]GeometryData)
}

// BuildWorld retorna a malha da versão atual do mundo, reaproveitando o cache
// quando o mundo não mudou desde a última construção.
func (s *ResultStore) BuildWorld(b *Builder, w *mapdata.World) (geo GeometryData, cached bool) {
	key := ResultKey{WorldID: w.ID, Version: w.Version}
	if hit, ok := s.Get(key); ok {
		return hit, true
	}
	geo = b.Build(w.Blocks)
	s.Store(key, geo)
	return geo, false
}
