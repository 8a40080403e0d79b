package status

import (
	"context"
	"fmt"
	"time"

	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/platform/metrics"
	"pet-care-assistant/internal/ports/kv"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	sensors SensorReader
	log     logger.Logger
	timeout time.Duration
}

func NewService(sensors SensorReader, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		sensors: sensors,
		log:     log.With(map[string]any{"component": "status"}),
	}
}

// WithTimeout acota la lectura de sensores de cada request. 0 = sin límite propio.
func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

// Snapshot lee los cinco grupos en paralelo. Cualquier error de lectura
// cancela el resto y se devuelve tal cual (sin reintentos).
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	docs := make([]kv.Doc, len(SensorGroups))
	g, gctx := errgroup.WithContext(ctx)
	for i, group := range SensorGroups {
		i, group := i, group
		g.Go(func() error {
			d, err := s.sensors.Get(gctx, string(group))
			if err != nil {
				return fmt.Errorf("read %s: %w", group, err)
			}
			docs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	records := make(map[SensorGroup]kv.Doc, len(SensorGroups))
	for i, group := range SensorGroups {
		records[group] = docs[i]
	}
	return BuildSnapshot(records), nil
}

// Ask clasifica la pregunta y responde con el estado actual del dispositivo.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		s.log.Error("sensor snapshot failed", map[string]any{"error": err.Error()})
		return Answer{}, err
	}

	q := NewQuery(question)
	intent := Classify(q.Text)
	adv := Advise(intent, snap, q)

	metrics.QuestionsAnswered.WithLabelValues(string(intent), string(adv.Severity)).Inc()
	s.log.Debug("question answered", map[string]any{
		"intent":   string(intent),
		"severity": string(adv.Severity),
		"lang":     string(q.Lang),
	})

	return Answer{
		Answer:           adv.Answer,
		Tips:             adv.Tips,
		Intent:           intent,
		Severity:         adv.Severity,
		ActionsSuggested: adv.Actions,
		Snapshot:         snap,
	}, nil
}
