package meals

import (
	"math"
	"strings"
)

const (
	// DefaultKcalPerGram se usa cuando feeding/meta no trae densidad válida.
	DefaultKcalPerGram = 3.6

	CatMultiplier = 1.2
	DogMultiplier = 1.6

	MealsPerDay = 2
)

// Horarios fijos del plan automático.
var schedules = map[Animal][]Slot{
	AnimalCat: {{Hour: 8, Minute: 0}, {Hour: 18, Minute: 0}},
	AnimalDog: {{Hour: 8, Minute: 0}, {Hour: 20, Minute: 0}},
}

// Schedule devuelve una copia de los horarios de la especie.
func Schedule(a Animal) []Slot {
	return append([]Slot(nil), schedules[a]...)
}

// RestingEnergy (RER) = 70 * kg^0.75, en kcal/día.
func RestingEnergy(weightKg float64) float64 {
	return 70 * math.Pow(weightKg, 0.75)
}

// MaintenanceEnergy (MER) aplica el multiplicador de adulto normal.
// ok=false si la especie no se conoce o el peso no es positivo.
func MaintenanceEnergy(p AnimalProfile) (Animal, float64, bool) {
	if !(p.Weight > 0) || math.IsInf(p.Weight, 0) {
		return "", 0, false
	}
	switch Animal(strings.ToLower(strings.TrimSpace(p.Type))) {
	case AnimalCat:
		return AnimalCat, RestingEnergy(p.Weight) * CatMultiplier, true
	case AnimalDog:
		return AnimalDog, RestingEnergy(p.Weight) * DogMultiplier, true
	default:
		return "", 0, false
	}
}

func kcalPerGram(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return DefaultKcalPerGram
	}
	return v
}

// Compute suma el MER por especie y lo pasa a gramos.
func Compute(profiles []AnimalProfile, d Density) (cat, dog SpeciesPlan) {
	var catKcal, dogKcal float64
	for _, p := range profiles {
		animal, mer, ok := MaintenanceEnergy(p)
		if !ok {
			continue
		}
		if animal == AnimalCat {
			catKcal += mer
		} else {
			dogKcal += mer
		}
	}

	return planFor(AnimalCat, catKcal, kcalPerGram(d.Cat)),
		planFor(AnimalDog, dogKcal, kcalPerGram(d.Dog))
}

func planFor(a Animal, kcal, density float64) SpeciesPlan {
	perDay := max(0, int(math.Round(kcal/density)))
	perMeal := max(1, int(math.Round(float64(perDay)/MealsPerDay)))
	return SpeciesPlan{
		GramsPerDay:  perDay,
		GramsPerMeal: perMeal,
		Meals:        Schedule(a),
	}
}
