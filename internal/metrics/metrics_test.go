package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DisabledReturnsNoop(t *testing.T) {
	m := New(false, nil)
	_, ok := m.(noop)
	assert.True(t, ok)

	m.IncRequestsTotal("/x", 200)
	m.ObserveRequestDuration("/x", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObserveStoreOp("addPet", time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(true, reg).(*collector)

	m.IncCacheHits()
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncRequestsTotal("GET /api/pets", 200)
	m.IncRequestsTotal("GET /api/pets", 404)
	m.ObserveStoreOp("deletePet", time.Millisecond, nil)
	m.ObserveStoreOp("deletePet", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET /api/pets", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("deletePet", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("deletePet", "error")))
}

func TestCollector_HandlerExposesMetrics(t *testing.T) {
	m := New(true, prometheus.NewRegistry())
	m.IncCacheHits()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pawnote_cache_hits_total 1")
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(true, reg).(*collector)

	r := chi.NewRouter()
	r.Use(Middleware(m))
	r.Get("/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"pet_1", "pet_2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET /pets/{petID}", "4xx")))

	n, err := testutil.GatherAndCount(reg, "pawnote_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStatusBucket(t *testing.T) {
	cases := map[int]string{101: "1xx", 204: "2xx", 301: "3xx", 422: "4xx", 503: "5xx"}
	for code, want := range cases {
		assert.Equal(t, want, statusBucket(code), strings.TrimSpace(http.StatusText(code)))
	}
}
