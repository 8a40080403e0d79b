package meals

// Animal es la especie a la que va destinada una comida.
type Animal string

const (
	AnimalCat Animal = "cat"
	AnimalDog Animal = "dog"
)

// DaysAll es el único valor de days que genera el plan automático.
const DaysAll = "all"

// Slot es una hora del día en la que se sirve comida.
type Slot struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Record es una comida programada que ejecuta el dispensador.
type Record struct {
	ID     string `json:"id"`
	Animal Animal `json:"animal"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Amount int    `json:"amount"` // gramos, >= 1
	Days   string `json:"days"`
}

// AnimalProfile es el perfil tal cual está guardado. Type y Weight no se
// validan al leer: lo que no sirve se descarta al calcular.
type AnimalProfile struct {
	Type   string
	Weight float64 // kg
}

// Density son las kcal por gramo del alimento de cada especie.
// Un valor <= 0 significa "sin configurar".
type Density struct {
	Cat float64
	Dog float64
}

// SpeciesPlan es el resultado del cálculo para una especie.
type SpeciesPlan struct {
	GramsPerDay  int    `json:"grams_per_day"`
	GramsPerMeal int    `json:"grams_per_meal"`
	Meals        []Slot `json:"meals"`
}

// Report es la respuesta de una generación.
type Report struct {
	OK           bool        `json:"ok"`
	Cat          SpeciesPlan `json:"cat"`
	Dog          SpeciesPlan `json:"dog"`
	CreatedCount int         `json:"created_count"`
	Created      []Record    `json:"created"`
}
