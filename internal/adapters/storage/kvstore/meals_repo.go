package kvstore

import (
	"context"
	"strings"

	"pet-care-assistant/internal/domain/meals"
	"pet-care-assistant/internal/ports/kv"
)

const (
	mealsPath = "feeding/meals"
	metaPath  = "feeding/meta"
)

// MealsRepo guarda las comidas bajo feeding/meals/<id>, que es donde las
// lee el dispensador.
type MealsRepo struct {
	store kv.Store
}

func NewMealsRepo(store kv.Store) *MealsRepo {
	return &MealsRepo{store: store}
}

type mealDoc struct {
	Animal string `json:"animal"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Amount int    `json:"amount"`
	Days   string `json:"days"`
}

func (r *MealsRepo) DeleteAll(ctx context.Context) error {
	return r.store.Delete(ctx, mealsPath)
}

func (r *MealsRepo) Insert(ctx context.Context, rec meals.Record) error {
	return r.store.PutChild(ctx, mealsPath, rec.ID, mealDoc{
		Animal: string(rec.Animal),
		Hour:   rec.Hour,
		Minute: rec.Minute,
		Amount: rec.Amount,
		Days:   rec.Days,
	})
}

func (r *MealsRepo) List(ctx context.Context) ([]meals.Record, error) {
	docs, err := r.store.Children(ctx, mealsPath)
	if err != nil {
		return nil, err
	}

	out := make([]meals.Record, 0, len(docs))
	for id, d := range docs {
		out = append(out, meals.Record{
			ID:     id,
			Animal: meals.Animal(strings.ToLower(d.String("animal"))),
			Hour:   intField(d, "hour"),
			Minute: intField(d, "minute"),
			Amount: intField(d, "amount"),
			Days:   d.String("days"),
		})
	}
	return out, nil
}

// KcalDensity lee feeding/meta. Campos ausentes o no numéricos vuelven en 0.
func (r *MealsRepo) KcalDensity(ctx context.Context) (meals.Density, error) {
	d, err := r.store.Get(ctx, metaPath)
	if err != nil {
		return meals.Density{}, err
	}
	cat, _ := d.Number("cat_kcal_per_gram")
	dog, _ := d.Number("dog_kcal_per_gram")
	return meals.Density{Cat: cat, Dog: dog}, nil
}

func intField(d kv.Doc, key string) int {
	v, _ := d.Number(key)
	return int(v)
}
