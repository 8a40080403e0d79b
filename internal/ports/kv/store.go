package kv

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidPath = errors.New("kv: invalid path")
)

// Store es el almacén clave-valor del dispositivo, direccionado por paths
// tipo "feeding/sensors". Un path guarda un documento (Get) o una colección
// de documentos con key propia (Children/PutChild).
type Store interface {
	// Get devuelve el documento en path. Si no existe devuelve (nil, nil).
	Get(ctx context.Context, path string) (Doc, error)

	// Children devuelve los hijos directos de path indexados por key.
	// Hijos que no son objetos se ignoran.
	Children(ctx context.Context, path string) (map[string]Doc, error)

	// PutChild escribe (reemplaza) el hijo key bajo path.
	PutChild(ctx context.Context, path, key string, doc any) error

	// Delete borra path completo, incluidos sus hijos.
	Delete(ctx context.Context, path string) error
}

// CleanPath normaliza un path ("/feeding//meals/" => "feeding/meals").
func CleanPath(path string) (string, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "." || p == ".." {
			return "", ErrInvalidPath
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return "", ErrInvalidPath
	}
	return strings.Join(out, "/"), nil
}

// ValidKey indica si key sirve como key de hijo (un solo segmento).
func ValidKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !strings.ContainsAny(key, "/.#$[]")
}
