package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-care-assistant/internal/domain/meals"
)

type MealsRepo struct {
	db *sql.DB
}

func NewMealsRepo(db *sql.DB) *MealsRepo {
	return &MealsRepo{db: db}
}

func (r *MealsRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM meal_records`)
	return err
}

func (r *MealsRepo) Insert(ctx context.Context, rec meals.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meal_records (id, animal, hour, minute, amount, days)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rec.ID,
		string(rec.Animal),
		rec.Hour,
		rec.Minute,
		rec.Amount,
		rec.Days,
	)
	return err
}

func (r *MealsRepo) List(ctx context.Context) ([]meals.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal, hour, minute, amount, days
		FROM meal_records
		ORDER BY hour ASC, minute ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]meals.Record, 0)
	for rows.Next() {
		var rec meals.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Animal,
			&rec.Hour,
			&rec.Minute,
			&rec.Amount,
			&rec.Days,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// KcalDensity lee la fila única de feeding_meta. Sin fila o con NULL => 0.
func (r *MealsRepo) KcalDensity(ctx context.Context) (meals.Density, error) {
	var cat, dog sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `
		SELECT cat_kcal_per_gram, dog_kcal_per_gram
		FROM feeding_meta
		WHERE id = 1
	`).Scan(&cat, &dog)
	if errors.Is(err, sql.ErrNoRows) {
		return meals.Density{}, nil
	}
	if err != nil {
		return meals.Density{}, err
	}
	return meals.Density{Cat: cat.Float64, Dog: dog.Float64}, nil
}
