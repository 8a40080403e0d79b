package meals

import "context"

// ProfileSource lee la colección de perfiles sin validar.
type ProfileSource interface {
	AnimalProfiles(ctx context.Context) ([]AnimalProfile, error)
}

// MetaReader lee las densidades calóricas configuradas. Valores ausentes o
// inválidos vuelven en 0.
type MetaReader interface {
	KcalDensity(ctx context.Context) (Density, error)
}

type Repository interface {
	DeleteAll(ctx context.Context) error
	Insert(ctx context.Context, r Record) error
	List(ctx context.Context) ([]Record, error)
}
