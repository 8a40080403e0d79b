package status

import (
	"fmt"
	"strings"
)

// Umbrales. Comida: <= ; tanque: < (estricto).
const (
	FoodCriticalLevel = 10.0
	FoodLowLevel      = 20.0
	TankCriticalLevel = 10.0
	TankLowLevel      = 30.0
)

// Query es la pregunta ya preparada para los handlers.
type Query struct {
	Text string // trim + lowercase, sin normalizar
	Lang Language
}

// NewQuery prepara la pregunta cruda y detecta el idioma.
func NewQuery(question string) Query {
	text := prepare(question)
	return Query{Text: text, Lang: DetectLanguage(text)}
}

type intentHandler func(s Snapshot, q Query, c catalog) Advisory

// Un handler puro por intent.
var intentHandlers = map[Intent]intentHandler{
	IntentCatFood:       func(s Snapshot, _ Query, c catalog) Advisory { return adviseFood(animalCat, s.CatFoodLevel, c) },
	IntentDogFood:       func(s Snapshot, _ Query, c catalog) Advisory { return adviseFood(animalDog, s.DogFoodLevel, c) },
	IntentWeight:        adviseWeight,
	IntentWater:         func(s Snapshot, _ Query, c catalog) Advisory { return adviseWater(s, c) },
	IntentEntertainment: func(s Snapshot, _ Query, c catalog) Advisory { return adviseEntertainment(s, c) },
	IntentSummary:       func(s Snapshot, _ Query, c catalog) Advisory { return adviseSummary(s, c) },
}

// Advise arma el advisory para intent. Garantiza al menos un tip y
// actions no-nil.
func Advise(intent Intent, s Snapshot, q Query) Advisory {
	h, ok := intentHandlers[intent]
	if !ok {
		h = intentHandlers[IntentSummary]
	}

	c := catalogFor(q.Lang)
	a := h(s, q, c)

	if a.Severity == "" {
		a.Severity = SeverityLow
	}
	if len(a.Tips) == 0 {
		a.Tips = []string{c.AllNormal}
	}
	if a.Actions == nil {
		a.Actions = []string{}
	}
	return a
}

func adviseFood(who animal, level float64, c catalog) Advisory {
	m := c.Food[who]
	a := Advisory{Answer: fmt.Sprintf(m.Remaining, num(level))}

	switch {
	case level <= FoodCriticalLevel:
		a.Severity = SeverityHigh
		a.Tips = append(a.Tips, m.Critical)
		a.Actions = append(a.Actions, m.CriticalAction)
	case level <= FoodLowLevel:
		a.Severity = SeverityMedium
		a.Tips = append(a.Tips, m.Low)
		a.Actions = append(a.Actions, m.LowAction)
	default:
		a.Severity = SeverityLow
		a.Tips = append(a.Tips, m.Normal)
	}
	return a
}

// adviseWeight responde por la especie nombrada en el texto crudo (gato primero);
// si no nombra ninguna, ambas.
func adviseWeight(s Snapshot, q Query, c catalog) Advisory {
	var answer string
	switch {
	case mentions(q.Text, ConceptCat):
		answer = fmt.Sprintf(c.Food[animalCat].BowlWeight, num(s.CatWeight))
	case mentions(q.Text, ConceptDog):
		answer = fmt.Sprintf(c.Food[animalDog].BowlWeight, num(s.DogWeight))
	default:
		answer = fmt.Sprintf(c.WeightBoth, num(s.CatWeight), num(s.DogWeight))
	}

	return Advisory{
		Answer:   answer,
		Severity: SeverityLow,
		Tips:     []string{c.WeightUpdated},
	}
}

func waterCritical(s Snapshot) bool {
	return s.WaterLow || s.TankPercentage < TankCriticalLevel
}

func adviseWater(s Snapshot, c catalog) Advisory {
	dish := c.No
	if s.DishEmpty {
		dish = c.Yes
	}
	a := Advisory{
		Answer: strings.Join([]string{
			fmt.Sprintf(c.WaterLevel, num(s.TankPercentage)),
			fmt.Sprintf(c.WaterDish, dish),
		}, "\n"),
	}

	switch {
	case waterCritical(s):
		a.Severity = SeverityHigh
		a.Tips = append(a.Tips, c.WaterCritical)
		a.Actions = append(a.Actions, c.WaterCriticalAction)
	case s.TankPercentage < TankLowLevel:
		a.Severity = SeverityMedium
		a.Tips = append(a.Tips, c.WaterLow)
	default:
		a.Severity = SeverityLow
		a.Tips = append(a.Tips, c.WaterNormal)
	}

	// independientes del umbral
	if s.DishEmpty {
		a.Tips = append(a.Tips, c.DishEmptyTip)
	}
	if s.IsDraining {
		a.Tips = append(a.Tips, c.DrainingTip)
	}
	return a
}

func adviseEntertainment(s Snapshot, c catalog) Advisory {
	if s.EntertainmentOn {
		return Advisory{
			Answer:   c.EntertainmentOn,
			Severity: SeverityLow,
			Tips:     []string{c.EntertainmentOnTip},
		}
	}
	return Advisory{
		Answer:   c.EntertainmentOff,
		Severity: SeverityMedium,
		Tips:     []string{c.EntertainmentOffTip},
		Actions:  []string{c.EntertainmentOffAction},
	}
}

// SummarySeverity: high si alguna condición crítica; medium si alguna de aviso; si no low.
func SummarySeverity(s Snapshot) Severity {
	switch {
	case s.CatFoodLevel <= FoodCriticalLevel,
		s.DogFoodLevel <= FoodCriticalLevel,
		waterCritical(s):
		return SeverityHigh
	case s.CatFoodLevel <= FoodLowLevel,
		s.DogFoodLevel <= FoodLowLevel,
		s.TankPercentage < TankLowLevel,
		s.DishEmpty,
		!s.EntertainmentOn:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func adviseSummary(s Snapshot, c catalog) Advisory {
	cat, dog := c.Food[animalCat], c.Food[animalDog]

	dish := c.SummaryNo
	if s.DishEmpty {
		dish = c.SummaryYes
	}
	ent := c.SummaryOff
	if s.EntertainmentOn {
		ent = c.SummaryActive
	}

	a := Advisory{
		Answer: strings.Join([]string{
			c.SummaryHeader,
			fmt.Sprintf(cat.SummaryLine, num(s.CatFoodLevel)),
			fmt.Sprintf(dog.SummaryLine, num(s.DogFoodLevel)),
			fmt.Sprintf(cat.SummaryGrams, num(s.CatWeight)),
			fmt.Sprintf(dog.SummaryGrams, num(s.DogWeight)),
			fmt.Sprintf(c.SummaryTank, num(s.TankPercentage)),
			fmt.Sprintf(c.SummaryDish, dish),
			fmt.Sprintf(c.SummaryEntertainment, ent),
		}, "\n"),
		Severity: SummarySeverity(s),
	}

	// Tips y acciones se acumulan todos, no solo el que define la severidad.
	if s.CatFoodLevel <= FoodLowLevel {
		a.Tips = append(a.Tips, fmt.Sprintf(cat.SummaryLow, num(s.CatFoodLevel)))
		a.Actions = append(a.Actions, cat.SummaryFill)
	}
	if s.DogFoodLevel <= FoodLowLevel {
		a.Tips = append(a.Tips, fmt.Sprintf(dog.SummaryLow, num(s.DogFoodLevel)))
		a.Actions = append(a.Actions, dog.SummaryFill)
	}
	if waterCritical(s) {
		a.Tips = append(a.Tips, fmt.Sprintf(c.SummaryWaterCritical, num(s.TankPercentage)))
		a.Actions = append(a.Actions, c.SummaryFillWater)
	}
	if s.DishEmpty {
		a.Tips = append(a.Tips, c.SummaryDishEmpty)
	}
	if !s.EntertainmentOn {
		a.Tips = append(a.Tips, c.SummaryEntOff)
		a.Actions = append(a.Actions, c.SummaryEnableEnt)
	}
	return a
}
