package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawnote/internal/app"
	"pawnote/internal/config"
	"pawnote/internal/metrics"
	"pawnote/internal/platform/logger"
	"pawnote/internal/router"
)

// @title Pawnote API
// @version 1.0.0
// @description Base local de Pawnote: mascotas, reminders, checklists y visitas al veterinario.
// @BasePath /api
func main() {
	configPath := flag.String("config", "", "path to pawnote.yaml (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(conf.Log.Level),
		Format: logger.ParseFormat(conf.Log.Format),
		App:    conf.App.Name,
	})
	m := metrics.New(conf.Metrics.Enabled, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, app.Options{Config: conf, Log: log, Metrics: m})
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         conf.HTTP.Addr,
		Handler:      router.NewRouter(router.Options{Store: a.Store, Log: log, Metrics: m}),
		ReadTimeout:  conf.HTTP.ReadTimeout,
		WriteTimeout: conf.HTTP.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": conf.HTTP.Addr, "config": conf.Path})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received", nil)
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("gracefully stopped", nil)
	return nil
}
