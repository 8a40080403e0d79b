package status

import "pet-care-assistant/internal/ports/kv"

// SensorGroup es un registro independiente del store.
type SensorGroup string

const (
	GroupFeedingSensors SensorGroup = "feeding/sensors"
	GroupWaterSensors   SensorGroup = "water/sensors"
	GroupWaterStatus    SensorGroup = "water/status"
	GroupWaterAlerts    SensorGroup = "water/alerts"
	GroupEntertainment  SensorGroup = "entertainment/commands"
)

// SensorGroups se leen todos en cada request.
var SensorGroups = []SensorGroup{
	GroupFeedingSensors,
	GroupWaterSensors,
	GroupWaterStatus,
	GroupWaterAlerts,
	GroupEntertainment,
}

type numberField struct {
	group SensorGroup
	key   string
	def   float64
	set   func(*Snapshot, float64)
}

type boolField struct {
	group SensorGroup
	key   string
	def   bool
	set   func(*Snapshot, bool)
}

// Tabla de defaults: un campo ausente (o con tipo inválido) toma def, nunca es error.
var numberFields = []numberField{
	{GroupFeedingSensors, "cat_food_level", 0, func(s *Snapshot, v float64) { s.CatFoodLevel = v }},
	{GroupFeedingSensors, "dog_food_level", 0, func(s *Snapshot, v float64) { s.DogFoodLevel = v }},
	{GroupFeedingSensors, "cat_weight", 0, func(s *Snapshot, v float64) { s.CatWeight = v }},
	{GroupFeedingSensors, "dog_weight", 0, func(s *Snapshot, v float64) { s.DogWeight = v }},
	{GroupWaterSensors, "tank_percentage", 0, func(s *Snapshot, v float64) { s.TankPercentage = v }},
}

var boolFields = []boolField{
	{GroupWaterSensors, "dish_empty", false, func(s *Snapshot, v bool) { s.DishEmpty = v }},
	{GroupWaterSensors, "tank_full", false, func(s *Snapshot, v bool) { s.TankFull = v }},
	{GroupWaterStatus, "is_draining", false, func(s *Snapshot, v bool) { s.IsDraining = v }},
	{GroupWaterAlerts, "water_low", false, func(s *Snapshot, v bool) { s.WaterLow = v }},
	{GroupEntertainment, "system_on", false, func(s *Snapshot, v bool) { s.EntertainmentOn = v }},
}

// BuildSnapshot arma el snapshot desde los registros leídos. Grupos ausentes
// (nil) equivalen a registros vacíos.
func BuildSnapshot(records map[SensorGroup]kv.Doc) Snapshot {
	var s Snapshot
	for _, f := range numberFields {
		v, ok := records[f.group].Number(f.key)
		if !ok {
			v = f.def
		}
		f.set(&s, v)
	}
	for _, f := range boolFields {
		v, ok := records[f.group].Bool(f.key)
		if !ok {
			v = f.def
		}
		f.set(&s, v)
	}
	return s
}
