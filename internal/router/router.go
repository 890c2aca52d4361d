package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pawnote/docs"
	mem "pawnote/internal/adapters/storage/memory"
	"pawnote/internal/domain/checklists"
	"pawnote/internal/domain/pets"
	"pawnote/internal/domain/reminders"
	"pawnote/internal/domain/vetvisits"
	"pawnote/internal/localdb"
	"pawnote/internal/metrics"
	"pawnote/internal/middleware"
	"pawnote/internal/platform/logger"
)

type Options struct {
	// Opcional: si no viene, usa un store in-memory vacío.
	Store *localdb.Store

	Log     logger.Logger    // nil => Nop
	Metrics metrics.Provider // nil => noop
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New(false, nil)
	}
	store := opts.Store
	if store == nil {
		store = localdb.New(mem.NewKVStore(), localdb.Options{Logger: log, Observer: m})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware(m))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.PetContext(store.Session()))

		api.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"Welcome to Pawnote API","version":"1.0.0"}`))
		})

		// Rutas por módulo
		pets.RegisterRoutes(api, store)
		reminders.RegisterRoutes(api, store)
		checklists.RegisterRoutes(api, store)
		vetvisits.RegisterRoutes(api, store)
	})

	return r
}
