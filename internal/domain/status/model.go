package status

// Intent es el propósito de la pregunta, derivado por keywords. Nunca se persiste.
type Intent string

const (
	IntentCatFood       Intent = "cat_food"
	IntentDogFood       Intent = "dog_food"
	IntentWeight        Intent = "weight"
	IntentWater         Intent = "water"
	IntentEntertainment Intent = "entertainment"
	IntentSummary       Intent = "summary"
)

// Intents en el orden en que se evalúan las reglas.
var Intents = []Intent{
	IntentCatFood,
	IntentDogFood,
	IntentWeight,
	IntentWater,
	IntentEntertainment,
	IntentSummary,
}

// Severity: low < medium < high.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// Max devuelve la severidad más alta de las dos.
func (s Severity) Max(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// Language se detecta del texto de la pregunta (ver DetectLanguage).
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Snapshot son las lecturas actuales, leídas en cada request (sin cache).
type Snapshot struct {
	CatFoodLevel    float64 `json:"cat_food_level"`
	DogFoodLevel    float64 `json:"dog_food_level"`
	CatWeight       float64 `json:"cat_weight"`
	DogWeight       float64 `json:"dog_weight"`
	TankPercentage  float64 `json:"tank_percentage"`
	DishEmpty       bool    `json:"dish_empty"`
	TankFull        bool    `json:"tank_full"`
	WaterLow        bool    `json:"water_low"`
	IsDraining      bool    `json:"is_draining"`
	EntertainmentOn bool    `json:"entertainment_on"`
}

// Advisory es lo que produce cada handler de intent.
type Advisory struct {
	Answer   string
	Tips     []string
	Severity Severity
	Actions  []string
}

// Answer es la respuesta completa de /ai/ask.
type Answer struct {
	Answer           string   `json:"answer"`
	Tips             []string `json:"tips"`
	Intent           Intent   `json:"intent"`
	Severity         Severity `json:"severity"`
	ActionsSuggested []string `json:"actions_suggested"`
	Snapshot         Snapshot `json:"snapshot"`
}
