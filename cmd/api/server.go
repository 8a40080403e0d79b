package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pet-care-assistant/internal/platform/config"
	"pet-care-assistant/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	srv *http.Server
	log logger.Logger
}

func newServer(cfg config.Config, h http.Handler, log logger.Logger) *server {
	return &server{
		srv: &http.Server{
			Addr:         cfg.ListenAddr(),
			Handler:      h,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		},
		log: log,
	}
}

// Run arranca el server y bloquea hasta que ctx se cancela o ListenAndServe falla.
func (s *server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", map[string]any{"addr": s.srv.Addr})
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
