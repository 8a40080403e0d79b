package kvstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"pet-care-assistant/internal/domain/meals"
	"pet-care-assistant/internal/domain/profiles"
	"pet-care-assistant/internal/ports/kv"
)

const profilesPath = "profiles"

// ProfilesRepo guarda perfiles como hijos de "profiles", key = id.
// Sirve a la API de perfiles y al generador de comidas.
type ProfilesRepo struct {
	store kv.Store
}

func NewProfilesRepo(store kv.Store) *ProfilesRepo {
	return &ProfilesRepo{store: store}
}

type profileDoc struct {
	Name      string  `json:"name,omitempty"`
	Type      string  `json:"type"`
	Weight    float64 `json:"weight"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("profile id required")
	}
	return r.store.PutChild(ctx, profilesPath, p.ID, profileDoc{
		Name:      p.Name,
		Type:      string(p.Type),
		Weight:    p.Weight,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	docs, err := r.store.Children(ctx, profilesPath)
	if err != nil {
		return profiles.Profile{}, err
	}
	d, ok := docs[id]
	if !ok {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return toProfile(id, d), nil
}

func (r *ProfilesRepo) List(ctx context.Context) ([]profiles.Profile, error) {
	docs, err := r.store.Children(ctx, profilesPath)
	if err != nil {
		return nil, err
	}

	out := make([]profiles.Profile, 0, len(docs))
	for id, d := range docs {
		out = append(out, toProfile(id, d))
	}

	// Orden estable por created_at asc (los perfiles cargados a mano no traen fecha)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// AnimalProfiles devuelve type/weight crudos; el generador descarta lo inválido.
func (r *ProfilesRepo) AnimalProfiles(ctx context.Context) ([]meals.AnimalProfile, error) {
	docs, err := r.store.Children(ctx, profilesPath)
	if err != nil {
		return nil, err
	}

	out := make([]meals.AnimalProfile, 0, len(docs))
	for _, d := range docs {
		w, _ := d.Number("weight")
		out = append(out, meals.AnimalProfile{Type: d.String("type"), Weight: w})
	}
	return out, nil
}

func toProfile(id string, d kv.Doc) profiles.Profile {
	w, _ := d.Number("weight")
	p := profiles.Profile{
		ID:     id,
		Name:   d.String("name"),
		Type:   profiles.Species(strings.ToLower(strings.TrimSpace(d.String("type")))),
		Weight: w,
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, d.String("created_at"))
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, d.String("updated_at"))
	return p
}
