// Package app arma las piezas compartidas por cmd/api y cmd/pawnote:
// kv según config, cache opcional, metrics y el localdb.Store abierto.
package app

import (
	"context"
	"errors"
	"fmt"

	"pawnote/internal/adapters/storage/cache"
	"pawnote/internal/adapters/storage/memory"
	pg "pawnote/internal/adapters/storage/postgres"
	"pawnote/internal/adapters/storage/sqlite"
	"pawnote/internal/config"
	"pawnote/internal/localdb"
	"pawnote/internal/metrics"
	"pawnote/internal/platform/logger"
	"pawnote/internal/ports/kv"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type App struct {
	Config  *config.Config
	Log     logger.Logger
	Metrics metrics.Provider
	Store   *localdb.Store

	closers []func() error
}

type Options struct {
	Config *config.Config
	Log    logger.Logger

	// Metrics nil => noop.
	Metrics metrics.Provider
}

// New abre el kv configurado y deja el store listo (Open ya corrido).
func New(ctx context.Context, opts Options) (*App, error) {
	conf := opts.Config
	if conf == nil {
		return nil, errors.New("app: config is required")
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New(false, nil)
	}

	a := &App{Config: conf, Log: log, Metrics: m}

	store, err := a.openKV(ctx, conf.Storage)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if conf.Cache.Enabled {
		store = cache.Wrap(store, conf.Cache.SizeMB, m)
	}

	a.Store = localdb.New(store, localdb.Options{Logger: log, Observer: m})
	if err := a.Store.Open(ctx); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("open local store: %w", err)
	}

	log.Info("local store ready", map[string]any{
		"driver": conf.Storage.Driver,
		"cache":  conf.Cache.Enabled,
	})
	return a, nil
}

func (a *App) openKV(ctx context.Context, sc config.Storage) (kv.Store, error) {
	switch sc.Driver {
	case config.DriverMemory, "":
		return memory.NewKVStore(), nil

	case config.DriverSQLite:
		s, err := sqlite.Open(sc.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s.Close)
		return s, nil

	case config.DriverPostgres:
		db, err := pg.Open(sc.DSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		s := pg.NewKVStore(db)
		if err := s.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, sc.Driver)
	}
}

// Close libera el backend (db/archivo). Se puede llamar más de una vez.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
