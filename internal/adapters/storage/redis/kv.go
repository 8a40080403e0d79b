package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-care-assistant/internal/ports/kv"

	goredis "github.com/redis/go-redis/v9"
)

// Store implementa kv.Store sobre Redis:
//   - documentos (Get) => string JSON en <prefix><path>
//   - colecciones (Children/PutChild) => hash en <prefix><path>, un field JSON por key
type Store struct {
	client *goredis.Client
	prefix string
}

type Options struct {
	Address  string
	Password string
	DB       int
	Prefix   string
}

// Open crea el cliente y verifica conexión con PING.
func Open(ctx context.Context, opts Options) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return New(rdb, opts.Prefix), nil
}

func New(client *goredis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func (s *Store) key(path string) (string, error) {
	p, err := kv.CleanPath(path)
	if err != nil {
		return "", err
	}
	return s.prefix + p, nil
}

func (s *Store) Get(ctx context.Context, path string) (kv.Doc, error) {
	key, err := s.key(path)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	d, err := kv.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("redis get %s: invalid json: %w", key, err)
	}
	return d, nil
}

func (s *Store) Children(ctx context.Context, path string) (map[string]kv.Doc, error) {
	key, err := s.key(path)
	if err != nil {
		return nil, err
	}

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", key, err)
	}

	out := make(map[string]kv.Doc, len(fields))
	for k, raw := range fields {
		d, err := kv.Decode([]byte(raw))
		if err != nil || d == nil {
			// registro corrupto o escalar: se ignora igual que un hijo no-objeto
			continue
		}
		out[k] = d
	}
	return out, nil
}

func (s *Store) PutChild(ctx context.Context, path, childKey string, doc any) error {
	key, err := s.key(path)
	if err != nil {
		return err
	}
	if !kv.ValidKey(childKey) {
		return fmt.Errorf("%w: key %q", kv.ErrInvalidPath, childKey)
	}

	b, err := kv.Encode(doc)
	if err != nil {
		return fmt.Errorf("redis: marshal doc: %w", err)
	}
	if err := s.client.HSet(ctx, key, childKey, b).Err(); err != nil {
		return fmt.Errorf("redis hset %s %s: %w", key, childKey, err)
	}
	return nil
}

// Delete borra la key de path y todas las keys bajo "<path>/".
func (s *Store) Delete(ctx context.Context, path string) error {
	key, err := s.key(path)
	if err != nil {
		return err
	}

	keys := []string{key}
	iter := s.client.Scan(ctx, 0, key+"/*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s: %w", key, err)
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
