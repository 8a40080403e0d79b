package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-assistant/internal/domain/meals"
	"pet-care-assistant/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (
			id, name, type, weight,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.Name,
		string(p.Type),
		p.Weight,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, weight, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, id)

	var p profiles.Profile
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Weight,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}
	return p, nil
}

func (r *ProfilesRepo) List(ctx context.Context) ([]profiles.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, weight, created_at, updated_at
		FROM profiles
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profiles.Profile, 0)
	for rows.Next() {
		var p profiles.Profile
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Type,
			&p.Weight,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProfilesRepo) AnimalProfiles(ctx context.Context) ([]meals.AnimalProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT type, weight FROM profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]meals.AnimalProfile, 0)
	for rows.Next() {
		var p meals.AnimalProfile
		if err := rows.Scan(&p.Type, &p.Weight); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
