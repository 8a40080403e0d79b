package meals

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/platform/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	profiles ProfileSource
	meta     MetaReader
	repo     Repository
	log      logger.Logger
	newID    func() string
	timeout  time.Duration
}

func NewService(profiles ProfileSource, meta MetaReader, repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		profiles: profiles,
		meta:     meta,
		repo:     repo,
		log:      log.With(map[string]any{"component": "meals"}),
		newID:    uuid.NewString,
	}
}

// WithTimeout acota toda la generación (lecturas + escrituras). 0 = sin límite propio.
func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Generate recalcula el plan y reemplaza todas las comidas guardadas.
// El borrado termina antes del primer insert; los inserts van en orden
// (gato y después perro, cada uno cronológico). Si algo falla no hay reporte.
func (s *Service) Generate(ctx context.Context) (Report, error) {
	rep, err := s.generate(ctx)
	if err != nil {
		metrics.MealGenerations.WithLabelValues("error").Inc()
		s.log.Error("meal generation failed", map[string]any{"error": err.Error()})
		return Report{}, err
	}

	metrics.MealGenerations.WithLabelValues("ok").Inc()
	s.log.Info("meal plan generated", map[string]any{
		"cat_grams_per_day": rep.Cat.GramsPerDay,
		"dog_grams_per_day": rep.Dog.GramsPerDay,
		"created":           rep.CreatedCount,
	})
	return rep, nil
}

func (s *Service) generate(ctx context.Context) (Report, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var (
		profiles []AnimalProfile
		density  Density
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if profiles, err = s.profiles.AnimalProfiles(gctx); err != nil {
			return fmt.Errorf("read profiles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if density, err = s.meta.KcalDensity(gctx); err != nil {
			return fmt.Errorf("read feeding meta: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	cat, dog := Compute(profiles, density)

	if err := s.repo.DeleteAll(ctx); err != nil {
		return Report{}, fmt.Errorf("clear meals: %w", err)
	}

	created := make([]Record, 0, len(cat.Meals)+len(dog.Meals))
	for _, plan := range []struct {
		animal Animal
		SpeciesPlan
	}{{AnimalCat, cat}, {AnimalDog, dog}} {
		for _, slot := range plan.Meals {
			rec := Record{
				ID:     s.newID(),
				Animal: plan.animal,
				Hour:   slot.Hour,
				Minute: slot.Minute,
				Amount: plan.GramsPerMeal,
				Days:   DaysAll,
			}
			if err := s.repo.Insert(ctx, rec); err != nil {
				return Report{}, fmt.Errorf("insert meal %s: %w", rec.ID, err)
			}
			created = append(created, rec)
		}
	}

	return Report{
		OK:           true,
		Cat:          cat,
		Dog:          dog,
		CreatedCount: len(created),
		Created:      created,
	}, nil
}

// List devuelve las comidas guardadas: gato, perro, resto; luego por horario.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	SortRecords(out)
	return out, nil
}

func animalRank(a Animal) int {
	switch a {
	case AnimalCat:
		return 0
	case AnimalDog:
		return 1
	default:
		return 2
	}
}

// SortRecords ordena in place por especie, hora, minuto e id.
func SortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if ra, rb := animalRank(a.Animal), animalRank(b.Animal); ra != rb {
			return ra < rb
		}
		if a.Hour != b.Hour {
			return a.Hour < b.Hour
		}
		if a.Minute != b.Minute {
			return a.Minute < b.Minute
		}
		return a.ID < b.ID
	})
}
