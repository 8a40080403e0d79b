package observed

import (
	"context"
	"time"

	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/platform/metrics"
	"pet-care-assistant/internal/ports/kv"
)

// Store decora un kv.Store con latencia en Prometheus y log de errores.
type Store struct {
	next    kv.Store
	backend string
	log     logger.Logger
}

func Wrap(next kv.Store, backend string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{
		next:    next,
		backend: backend,
		log:     log.With(map[string]any{"component": "kv", "backend": backend}),
	}
}

func (s *Store) observe(op, path string, start time.Time, err error) {
	metrics.StoreOperationDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Error("store operation failed", map[string]any{
			"op":    op,
			"path":  path,
			"error": err.Error(),
		})
	}
}

func (s *Store) Get(ctx context.Context, path string) (kv.Doc, error) {
	start := time.Now()
	d, err := s.next.Get(ctx, path)
	s.observe("get", path, start, err)
	return d, err
}

func (s *Store) Children(ctx context.Context, path string) (map[string]kv.Doc, error) {
	start := time.Now()
	out, err := s.next.Children(ctx, path)
	s.observe("children", path, start, err)
	return out, err
}

func (s *Store) PutChild(ctx context.Context, path, key string, doc any) error {
	start := time.Now()
	err := s.next.PutChild(ctx, path, key, doc)
	s.observe("put_child", path, start, err)
	return err
}

func (s *Store) Delete(ctx context.Context, path string) error {
	start := time.Now()
	err := s.next.Delete(ctx, path)
	s.observe("delete", path, start, err)
	return err
}
