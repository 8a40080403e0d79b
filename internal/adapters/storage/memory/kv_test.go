package memory

import (
	"context"
	"testing"

	"pet-care-assistant/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ kv.Store = (*Store)(nil)

func TestStore_GetMissingReturnsNil(t *testing.T) {
	s := NewStore()

	d, err := s.Get(context.Background(), "feeding/sensors")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestStore_SeedAndGet_NormalizesNumbers(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Seed("/feeding/sensors/", map[string]any{"cat_food_level": 45}))

	d, err := s.Get(context.Background(), "feeding/sensors")
	require.NoError(t, err)
	assert.Equal(t, 45.0, d["cat_food_level"])

	// Mutar la copia no afecta al store.
	d["cat_food_level"] = 1.0
	again, _ := s.Get(context.Background(), "feeding/sensors")
	assert.Equal(t, 45.0, again["cat_food_level"])
}

func TestStore_ChildrenAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.PutChild(ctx, "feeding/meals", "a", map[string]any{"animal": "cat"}))
	require.NoError(t, s.PutChild(ctx, "feeding/meals", "b", map[string]any{"animal": "dog"}))
	require.NoError(t, s.Seed("feeding/sensors", map[string]any{"cat_food_level": 10}))

	kids, err := s.Children(ctx, "feeding/meals")
	require.NoError(t, err)
	assert.Len(t, kids, 2)
	assert.Equal(t, "dog", kids["b"].String("animal"))

	require.NoError(t, s.Delete(ctx, "feeding/meals"))

	kids, err = s.Children(ctx, "feeding/meals")
	require.NoError(t, err)
	assert.Empty(t, kids)

	// Borrar meals no toca sensores.
	d, _ := s.Get(ctx, "feeding/sensors")
	assert.NotNil(t, d)

	require.NoError(t, s.Delete(ctx, "feeding"))
	d, _ = s.Get(ctx, "feeding/sensors")
	assert.Nil(t, d)
}

func TestStore_RejectsBadKeys(t *testing.T) {
	s := NewStore()
	err := s.PutChild(context.Background(), "feeding/meals", "a/b", map[string]any{})
	assert.ErrorIs(t, err, kv.ErrInvalidPath)

	_, err = s.Get(context.Background(), "")
	assert.ErrorIs(t, err, kv.ErrInvalidPath)

	assert.Error(t, s.Seed("x", 42))
}
