package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"esaj/internal/consulta"
	consultahandler "esaj/internal/consulta/handler"
	consultametrics "esaj/internal/consulta/metrics"
	healthhandler "esaj/internal/health/handler"
	httpapi "esaj/internal/http"
	"esaj/internal/platform/config"
	"esaj/internal/platform/httpserver"
	"esaj/internal/platform/logger"
	"esaj/internal/platform/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal module packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	consultaSvc := consulta.NewService(
		consulta.WithLogger(log),
		consulta.WithMetrics(consultametrics.New(reg)),
		consulta.WithSource(cfg.Source),
	)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:             log,
		Metrics:            metrics.New(reg),
		Gatherer:           reg,
		RequestTimeout:     cfg.RequestTimeout,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Handlers: []httpapi.Registrar{
			healthhandler.New(),
			consultahandler.New(consultaSvc, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting esaj connector", "addr", cfg.Addr, "source", cfg.Source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}
