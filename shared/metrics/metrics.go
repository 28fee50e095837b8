// Package metrics exporta contadores do gerador, do mesher e do renderizador
// em formato Prometheus.
package metrics

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voxelvision"

// Metrics guarda as métricas num registro próprio, para que testes e
// binários diferentes não colidam no registro global.
type Metrics struct {
	Registry *prometheus.Registry

	GenerationSeconds prometheus.Histogram
	WorldBlocks       prometheus.Gauge
	TreesPlanted      prometheus.Counter
	MeshVertices      prometheus.Gauge
	MeshIndices       prometheus.Gauge
	MeshBuilds        *prometheus.CounterVec // label "cache": hit ou miss
	FramesSubmitted   prometheus.Counter
	DrawErrors        prometheus.Counter
}

// New cria e registra todas as métricas.
func New() *Metrics {
	m := &Metrics{
		GenerationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_seconds",
			Help:      "Duração da geração de terreno.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		WorldBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "world_blocks",
			Help:      "Blocos no mundo atual.",
		}),
		TreesPlanted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trees_planted_total",
			Help:      "Árvores plantadas desde o início.",
		}),
		MeshVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mesh_vertices",
			Help:      "Vértices na malha enviada.",
		}),
		MeshIndices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mesh_indices",
			Help:      "Índices na malha enviada.",
		}),
		MeshBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mesh_builds_total",
			Help:      "Pedidos de malha, por resultado do cache.",
		}, []string{"cache"}),
		FramesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_submitted_total",
			Help:      "Frames submetidos à GPU.",
		}),
		DrawErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draw_errors_total",
			Help:      "Falhas de submissão.",
		}),
	}

	m.Registry = prometheus.NewRegistry()
	m.Registry.MustRegister(
		m.GenerationSeconds, m.WorldBlocks, m.TreesPlanted,
		m.MeshVertices, m.MeshIndices, m.MeshBuilds,
		m.FramesSubmitted, m.DrawErrors,
	)
	return m
}

// ObserveGeneration registra uma geração concluída.
func (m *Metrics) ObserveGeneration(d time.Duration, blocks int) {
	m.GenerationSeconds.Observe(d.Seconds())
	m.WorldBlocks.Set(float64(blocks))
}

// ObserveTrees registra árvores plantadas e o novo total de blocos.
func (m *Metrics) ObserveTrees(planted, blocks int) {
	m.TreesPlanted.Add(float64(planted))
	m.WorldBlocks.Set(float64(blocks))
}

// ObserveMesh registra o tamanho da malha e se ela veio do cache.
func (m *Metrics) ObserveMesh(vertices, indices int, cached bool) {
	m.MeshVertices.Set(float64(vertices))
	m.MeshIndices.Set(float64(indices))
	label := "miss"
	if cached {
		label = "hit"
	}
	m.MeshBuilds.WithLabelValues(label).Inc()
}

// Handler expõe o registro próprio.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve inicia o endpoint /metrics em segundo plano. Retorna o servidor para
// que o chamador possa fechá-lo.
func (m *Metrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Printf("[Metrics] /metrics disponível em %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Metrics] Erro no servidor HTTP: %v", err)
		}
	}()
	return srv
}
