package profiles

import (
	"strings"
	"time"
)

// Species define las especies que el comedero sabe alimentar.
// @Enum cat, dog
type Species string

const (
	SpeciesCat Species = "cat"
	SpeciesDog Species = "dog"
)

// ParseSpecies acepta mayúsculas y espacios en los bordes ("Cat " => cat).
func ParseSpecies(s string) (Species, bool) {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesCat:
		return SpeciesCat, true
	case SpeciesDog:
		return SpeciesDog, true
	default:
		return "", false
	}
}

// Profile es un animal registrado en el dispositivo. El generador de comidas
// solo usa Type y Weight.
type Profile struct {
	ID   string
	Name string

	Type   Species
	Weight float64 // kg

	CreatedAt time.Time
	UpdatedAt time.Time
}
