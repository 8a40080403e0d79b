package profiles

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Profile
	order []string
	err   error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Profile{}}
}

func (r *testRepo) Create(ctx context.Context, p Profile) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Profile, error) {
	out := make([]Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestCreate_NormalizesSpecies(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), CreateInput{Name: " Luna ", Type: " CAT", Weight: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Type != SpeciesCat {
		t.Fatalf("expected cat, got %q", p.Type)
	}
	if p.Name != "Luna" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("created_at and updated_at should match on create")
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("profile not persisted")
	}
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(newTestRepo())

	cases := []CreateInput{
		{Type: "hamster", Weight: 1},
		{Type: "", Weight: 3},
		{Type: "dog", Weight: 0},
		{Type: "dog", Weight: -2},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestCreate_PropagatesRepoError(t *testing.T) {
	repo := newTestRepo()
	repo.err = errors.New("store down")

	_, err := newTestService(repo).Create(context.Background(), CreateInput{Type: "dog", Weight: 12})
	if err == nil || err.Error() != "store down" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestGetByID_BlankIsNotFound(t *testing.T) {
	svc := newTestService(newTestRepo())
	if _, err := svc.GetByID(context.Background(), "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseSpecies(t *testing.T) {
	if s, ok := ParseSpecies("Dog"); !ok || s != SpeciesDog {
		t.Fatalf("expected dog, got %q %v", s, ok)
	}
	if _, ok := ParseSpecies("bird"); ok {
		t.Fatalf("bird should not parse")
	}
}
