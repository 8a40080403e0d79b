package status

import (
	"context"

	"pet-care-assistant/internal/ports/kv"
)

// SensorReader es la parte del store que usa este módulo. Cualquier kv.Store sirve.
type SensorReader interface {
	Get(ctx context.Context, path string) (kv.Doc, error)
}
