package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-care-assistant/internal/adapters/storage/firebase"
	"pet-care-assistant/internal/adapters/storage/memory"
	"pet-care-assistant/internal/adapters/storage/observed"
	pg "pet-care-assistant/internal/adapters/storage/postgres"
	"pet-care-assistant/internal/adapters/storage/redis"
	"pet-care-assistant/internal/platform/config"
	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/ports/kv"
)

// Backends son las conexiones abiertas según la config. Close las libera
// en orden inverso.
type Backends struct {
	KV kv.Store
	DB *sql.DB // nil si no hay postgres.dsn

	closers []func() error
}

func OpenBackends(ctx context.Context, cfg config.Config, log logger.Logger) (*Backends, error) {
	if log == nil {
		log = logger.NewNop()
	}
	b := &Backends{}

	var store kv.Store
	switch cfg.Store.Backend {
	case config.BackendRedis:
		rs, err := redis.Open(ctx, redis.Options{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		b.closers = append(b.closers, rs.Close)
		store = rs

	case config.BackendFirebase:
		fs, err := firebase.New(firebase.Options{
			DatabaseURL: cfg.Firebase.DatabaseURL,
			AuthToken:   cfg.Firebase.AuthToken,
			Timeout:     cfg.Store.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("open firebase store: %w", err)
		}
		store = fs

	default:
		ms := memory.NewStore()
		if err := SeedDemo(ms); err != nil {
			return nil, err
		}
		log.Warn("using in-memory store with demo readings", nil)
		store = ms
	}
	b.KV = observed.Wrap(store, cfg.Store.Backend, log)

	if cfg.Postgres.DSN != "" {
		db, err := pg.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		b.closers = append(b.closers, db.Close)
		if err := pg.Migrate(ctx, db); err != nil {
			_ = b.Close()
			return nil, err
		}
		b.DB = db
	}

	log.Info("backends ready", map[string]any{
		"store":    cfg.Store.Backend,
		"postgres": b.DB != nil,
	})
	return b, nil
}

func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

// SeedDemo carga lecturas de ejemplo para correr sin dispositivo.
func SeedDemo(s *memory.Store) error {
	seed := map[string]map[string]any{
		"feeding/sensors": {
			"cat_food_level": 45,
			"dog_food_level": 18,
			"cat_weight":     120,
			"dog_weight":     340,
		},
		"water/sensors": {
			"tank_percentage": 62,
			"dish_empty":      false,
			"tank_full":       false,
		},
		"water/status":           {"is_draining": false},
		"water/alerts":           {"water_low": false},
		"entertainment/commands": {"system_on": true},
		"feeding/meta": {
			"cat_kcal_per_gram": 3.6,
			"dog_kcal_per_gram": 3.6,
		},
	}
	for path, doc := range seed {
		if err := s.Seed(path, doc); err != nil {
			return fmt.Errorf("seed %s: %w", path, err)
		}
	}
	return nil
}
