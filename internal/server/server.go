// Package server runs the optional read-only HTTP surface.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mlbscores/internal/app/games"
	"mlbscores/internal/config"
	"mlbscores/internal/httpapi"
	"mlbscores/internal/logging"
	"mlbscores/internal/metrics"
	"mlbscores/internal/providers/statsapi"
)

// Server owns the HTTP listener and its wiring.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
}

// New constructs a Server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	registry := prometheus.NewRegistry()
	var recorder *metrics.Recorder
	if s.cfg.Server.MetricsEnabled {
		recorder = metrics.NewRecorder(registry)
	}

	client := statsapi.NewClient(statsapi.Config{
		BaseURL:  s.cfg.BaseURL,
		Timeout:  s.cfg.HTTPTimeout,
		Logger:   s.logger,
		Recorder: recorder,
	})
	svc := games.NewService(client, s.logger)

	mux := http.NewServeMux()
	mux.Handle("/", httpapi.RequestLogger(s.logger, recorder, httpapi.NewHandler(svc, s.logger)))
	if s.cfg.Server.MetricsEnabled {
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(s.logger, "listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
