package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"pet-care-assistant/internal/ports/kv"
)

// Store es un kv.Store en memoria. Sirve para dev y tests; se pierde al reiniciar.
type Store struct {
	mu       sync.RWMutex
	docs     map[string]kv.Doc
	children map[string]map[string]kv.Doc
}

func NewStore() *Store {
	return &Store{
		docs:     make(map[string]kv.Doc),
		children: make(map[string]map[string]kv.Doc),
	}
}

// Seed escribe un documento en path (reemplaza). Lo usan dev mode y tests
// para simular lo que publica el dispositivo.
func (s *Store) Seed(path string, doc any) error {
	p, err := kv.CleanPath(path)
	if err != nil {
		return err
	}
	d, err := normalize(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[p] = d
	return nil
}

func (s *Store) Get(_ context.Context, path string) (kv.Doc, error) {
	p, err := kv.CleanPath(path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[p]
	if !ok {
		return nil, nil
	}
	return copyDoc(d), nil
}

func (s *Store) Children(_ context.Context, path string) (map[string]kv.Doc, error) {
	p, err := kv.CleanPath(path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]kv.Doc, len(s.children[p]))
	for k, d := range s.children[p] {
		out[k] = copyDoc(d)
	}
	return out, nil
}

func (s *Store) PutChild(_ context.Context, path, key string, doc any) error {
	p, err := kv.CleanPath(path)
	if err != nil {
		return err
	}
	if !kv.ValidKey(key) {
		return fmt.Errorf("%w: key %q", kv.ErrInvalidPath, key)
	}
	d, err := normalize(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.children[p] == nil {
		s.children[p] = make(map[string]kv.Doc)
	}
	s.children[p][key] = d
	return nil
}

func (s *Store) Delete(_ context.Context, path string) error {
	p, err := kv.CleanPath(path)
	if err != nil {
		return err
	}
	prefix := p + "/"

	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.docs {
		if k == p || strings.HasPrefix(k, prefix) {
			delete(s.docs, k)
		}
	}
	for k := range s.children {
		if k == p || strings.HasPrefix(k, prefix) {
			delete(s.children, k)
		}
	}
	return nil
}

// normalize pasa doc por JSON para que los tipos queden igual que en un
// backend remoto (números => float64, structs => map).
func normalize(doc any) (kv.Doc, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("memory: marshal doc: %w", err)
	}
	d, err := kv.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("memory: decode doc: %w", err)
	}
	if d == nil {
		return nil, fmt.Errorf("memory: doc must be a JSON object")
	}
	return d, nil
}

func copyDoc(d kv.Doc) kv.Doc {
	out := make(kv.Doc, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
