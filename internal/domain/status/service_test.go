package status_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-assistant/internal/adapters/storage/memory"
	"pet-care-assistant/internal/domain/status"
	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	require.NoError(t, s.Seed("feeding/sensors", map[string]any{
		"cat_food_level": 45,
		"dog_food_level": "8",
		"cat_weight":     120.5,
		"dog_weight":     300,
	}))
	require.NoError(t, s.Seed("water/sensors", map[string]any{
		"tank_percentage": 62,
		"dish_empty":      "true",
		"tank_full":       false,
	}))
	require.NoError(t, s.Seed("water/status", map[string]any{"is_draining": true}))
	require.NoError(t, s.Seed("water/alerts", map[string]any{"water_low": false}))
	require.NoError(t, s.Seed("entertainment/commands", map[string]any{"system_on": true}))
	return s
}

func TestService_Snapshot_ReadsEveryGroup(t *testing.T) {
	svc := status.NewService(seededStore(t), logger.NewTest(t))

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, status.Snapshot{
		CatFoodLevel:    45,
		DogFoodLevel:    8,
		CatWeight:       120.5,
		DogWeight:       300,
		TankPercentage:  62,
		DishEmpty:       true,
		TankFull:        false,
		WaterLow:        false,
		IsDraining:      true,
		EntertainmentOn: true,
	}, snap)
}

func TestService_Snapshot_DefaultsWhenEmpty(t *testing.T) {
	svc := status.NewService(memory.NewStore(), nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.Snapshot{}, snap)
}

func TestService_Snapshot_InvalidValuesTakeDefault(t *testing.T) {
	s := memory.NewStore()
	require.NoError(t, s.Seed("feeding/sensors", map[string]any{
		"cat_food_level": "lots",
		"dog_food_level": []int{1},
	}))
	require.NoError(t, s.Seed("entertainment/commands", map[string]any{"system_on": "maybe"}))

	snap, err := status.NewService(s, nil).Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.CatFoodLevel)
	assert.Zero(t, snap.DogFoodLevel)
	assert.False(t, snap.EntertainmentOn)
}

type failingReader struct {
	failOn string
	err    error
}

func (f failingReader) Get(ctx context.Context, path string) (kv.Doc, error) {
	if path == f.failOn {
		return nil, f.err
	}
	return kv.Doc{}, nil
}

func TestService_Ask_PropagatesReadError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := status.NewService(failingReader{failOn: "water/alerts", err: boom}, logger.NewTest(t))

	_, err := svc.Ask(context.Background(), "status")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "water/alerts")
}

type slowReader struct{}

func (slowReader) Get(ctx context.Context, _ string) (kv.Doc, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Second):
		return kv.Doc{}, nil
	}
}

func TestService_Snapshot_Timeout(t *testing.T) {
	svc := status.NewService(slowReader{}, nil).WithTimeout(20 * time.Millisecond)

	_, err := svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_Ask(t *testing.T) {
	svc := status.NewService(seededStore(t), logger.NewTest(t))

	t.Run("dog food critical", func(t *testing.T) {
		ans, err := svc.Ask(context.Background(), "How is the DOG food?")
		require.NoError(t, err)

		assert.Equal(t, status.IntentDogFood, ans.Intent)
		assert.Equal(t, status.SeverityHigh, ans.Severity)
		assert.Equal(t, "Dog food remaining: 8%.", ans.Answer)
		assert.Equal(t, []string{"Feed dog immediately"}, ans.ActionsSuggested)
		assert.Equal(t, float64(8), ans.Snapshot.DogFoodLevel)
	})

	t.Run("empty question is summary", func(t *testing.T) {
		ans, err := svc.Ask(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, status.IntentSummary, ans.Intent)
		assert.Equal(t, status.SeverityHigh, ans.Severity)
		assert.Contains(t, ans.Tips, "🔴 Dog food is low (8%)")
		assert.Contains(t, ans.Tips, "🟡 Water dish is empty")
	})

	t.Run("arabic water", func(t *testing.T) {
		ans, err := svc.Ask(context.Background(), "كم نسبة الماء؟")
		require.NoError(t, err)

		assert.Equal(t, status.IntentWater, ans.Intent)
		assert.Equal(t, status.SeverityLow, ans.Severity)
		assert.Equal(t, "نسبة المياه بالتنك: 62%\nصحن المياه فارغ: نعم ⚠️", ans.Answer)
		assert.Equal(t, []string{
			"نسبة المياه ضمن الطبيعي ✅",
			"صحن الماء فارغ. تحقق من المضخة أو فعّل التعبئة اليدوية.",
			"نظام التصريف يعمل حاليًا.",
		}, ans.Tips)
	})
}
