package profiles

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

type Service struct {
	repo    Repository
	now     func() time.Time
	timeout time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// WithTimeout acota cada operación contra el store. 0 = sin límite propio.
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

type CreateInput struct {
	Name   string
	Type   string
	Weight float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Profile, error) {
	species, ok := ParseSpecies(in.Type)
	if !ok {
		return Profile{}, ErrInvalidInput
	}
	if in.Weight <= 0 || math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return Profile{}, ErrInvalidInput
	}

	now := s.now()
	p := Profile{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Type:      species,
		Weight:    in.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrNotFound
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.List(ctx)
}
