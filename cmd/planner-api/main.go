// Command planner-api serves the plate planning HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"platecore/internal/adapters/planapi"
	"platecore/internal/blob"
	"platecore/internal/planner"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	if err := run(log); err != nil {
		log.Errorf("planner-api: %v", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := blob.Open(ctx)
	if err != nil {
		return err
	}
	log.Infof("artifact store driver: %s", store.Driver())

	metrics, err := planapi.NewPrometheusRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	service := planner.NewService(
		planner.WithLogger(log),
		planner.WithMetrics(metrics),
	)

	worker := planapi.NewWorker(service, store, log)
	worker.Start()

	handler := planapi.NewHandler(service)
	handler.Exports = worker

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handler)

	addr := os.Getenv("PLATECORE_LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return worker.Stop(shutdownCtx)
}
