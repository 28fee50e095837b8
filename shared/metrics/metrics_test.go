package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	m := New()
	m.ObserveGeneration(20*time.Millisecond, 1234)

	assert.Equal(t, float64(1234), testutil.ToFloat64(m.WorldBlocks))
	assert.Equal(t, 1, testutil.CollectAndCount(m.GenerationSeconds))
}

func TestObserveMeshCountsCache(t *testing.T) {
	m := New()
	m.ObserveMesh(80, 360, false)
	m.ObserveMesh(80, 360, true)
	m.ObserveMesh(80, 360, true)

	assert.Equal(t, float64(80), testutil.ToFloat64(m.MeshVertices))
	assert.Equal(t, float64(360), testutil.ToFloat64(m.MeshIndices))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MeshBuilds.WithLabelValues("miss")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.MeshBuilds.WithLabelValues("hit")))
}

func TestObserveTrees(t *testing.T) {
	m := New()
	m.ObserveTrees(3, 100)
	m.ObserveTrees(2, 150)

	assert.Equal(t, float64(5), testutil.ToFloat64(m.TreesPlanted))
	assert.Equal(t, float64(150), testutil.ToFloat64(m.WorldBlocks))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.FramesSubmitted.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "voxelvision_frames_submitted_total 1"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.DrawErrors.Inc()
	assert.Equal(t, float64(0), testutil.ToFloat64(b.DrawErrors))
}
