package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider lo implementan el collector real y el noop.
// Satisface localdb.Observer y cache.Observer.
type Provider interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, d time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveStoreOp(op string, d time.Duration, err error)
	Handler() http.Handler
}

type collector struct {
	gatherer        prometheus.Gatherer
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	storeOps        *prometheus.CounterVec
	storeDuration   *prometheus.HistogramVec
}

// New devuelve un noop si enabled es false. Con reg nil usa un registry nuevo.
func New(enabled bool, reg *prometheus.Registry) Provider {
	if !enabled {
		return noop{}
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)

	return &collector{
		gatherer: reg,
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pawnote_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pawnote_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "pawnote_cache_hits_total",
			Help: "Total number of kv cache hits",
		}),

		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "pawnote_cache_misses_total",
			Help: "Total number of kv cache misses",
		}),

		storeOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pawnote_store_ops_total",
			Help: "Local store operations by result",
		}, []string{"op", "result"}),

		storeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pawnote_store_op_duration_seconds",
			Help:    "Local store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

func (m *collector) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, statusBucket(status)).Inc()
}

func (m *collector) ObserveRequestDuration(endpoint string, d time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *collector) IncCacheHits()   { m.cacheHits.Inc() }
func (m *collector) IncCacheMisses() { m.cacheMisses.Inc() }

func (m *collector) ObserveStoreOp(op string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOps.WithLabelValues(op, result).Inc()
	m.storeDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (m *collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// Middleware registra conteo y duración por patrón de ruta de chi,
// no por path crudo (los ids no explotan la cardinalidad).
func Middleware(p Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			endpoint := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if pattern := rc.RoutePattern(); pattern != "" {
					endpoint = r.Method + " " + pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			p.IncRequestsTotal(endpoint, status)
			p.ObserveRequestDuration(endpoint, time.Since(start))
		})
	}
}

type noop struct{}

func (noop) IncRequestsTotal(string, int)                 {}
func (noop) ObserveRequestDuration(string, time.Duration) {}
func (noop) IncCacheHits()                                {}
func (noop) IncCacheMisses()                              {}
func (noop) ObserveStoreOp(string, time.Duration, error)  {}
func (noop) Handler() http.Handler                        { return http.NotFoundHandler() }
