package firebase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-care-assistant/internal/platform/httpclient"
	"pet-care-assistant/internal/ports/kv"
)

// Store implementa kv.Store contra la API REST de una base en tiempo real
// (GET/PUT/DELETE sobre <databaseURL>/<path>.json).
type Store struct {
	client *httpclient.Client
}

type Options struct {
	DatabaseURL string
	AuthToken   string // opcional; se manda como ?auth=
	Timeout     time.Duration
	Transport   http.RoundTripper
}

func New(opts Options) (*Store, error) {
	var q url.Values
	if tok := strings.TrimSpace(opts.AuthToken); tok != "" {
		q = url.Values{"auth": []string{tok}}
	}

	c, err := httpclient.New(httpclient.Options{
		BaseURL:   opts.DatabaseURL,
		Timeout:   opts.Timeout,
		Query:     q,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("firebase: %w", err)
	}
	return &Store{client: c}, nil
}

func resource(path string) (string, error) {
	p, err := kv.CleanPath(path)
	if err != nil {
		return "", err
	}
	return "/" + p + ".json", nil
}

func (s *Store) Get(ctx context.Context, path string) (kv.Doc, error) {
	res, err := resource(path)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.DoJSON(ctx, http.MethodGet, res, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	d, err := kv.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("firebase get %s: invalid json: %w", res, err)
	}
	return d, nil
}

func (s *Store) Children(ctx context.Context, path string) (map[string]kv.Doc, error) {
	res, err := resource(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := s.client.DoJSON(ctx, http.MethodGet, res, nil, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]kv.Doc, len(raw))
	for k, v := range raw {
		d, err := kv.Decode(v)
		if err != nil || d == nil {
			continue
		}
		out[k] = d
	}
	return out, nil
}

func (s *Store) PutChild(ctx context.Context, path, key string, doc any) error {
	if !kv.ValidKey(key) {
		return fmt.Errorf("%w: key %q", kv.ErrInvalidPath, key)
	}
	res, err := resource(strings.TrimRight(path, "/") + "/" + key)
	if err != nil {
		return err
	}
	return s.client.DoJSON(ctx, http.MethodPut, res, doc, nil)
}

func (s *Store) Delete(ctx context.Context, path string) error {
	res, err := resource(path)
	if err != nil {
		return err
	}
	return s.client.DoJSON(ctx, http.MethodDelete, res, nil, nil)
}
