package status

import "strconv"

type animal int

const (
	animalCat animal = iota
	animalDog
)

type foodMessages struct {
	Remaining      string // %s = nivel
	Critical       string
	CriticalAction string
	Low            string
	LowAction      string
	Normal         string

	SummaryLine  string // %s = nivel
	SummaryLow   string // %s = nivel
	SummaryFill  string
	BowlWeight   string // %s = gramos
	SummaryGrams string // %s = gramos
}

type catalog struct {
	Food map[animal]foodMessages

	WeightBoth    string // %s gato, %s perro
	WeightUpdated string

	WaterLevel          string
	WaterDish           string
	Yes, No             string
	WaterCritical       string
	WaterCriticalAction string
	WaterLow            string
	WaterNormal         string
	DishEmptyTip        string
	DrainingTip         string

	EntertainmentOn        string
	EntertainmentOnTip     string
	EntertainmentOff       string
	EntertainmentOffTip    string
	EntertainmentOffAction string

	SummaryHeader        string
	SummaryTank          string
	SummaryDish          string
	SummaryYes           string
	SummaryNo            string
	SummaryEntertainment string
	SummaryActive        string
	SummaryOff           string
	SummaryWaterCritical string
	SummaryDishEmpty     string
	SummaryEntOff        string
	SummaryFillWater     string
	SummaryEnableEnt     string

	AllNormal string
}

var catalogs = map[Language]catalog{
	LanguageEnglish: {
		Food: map[animal]foodMessages{
			animalCat: {
				Remaining:      "Cat food remaining: %s%%.",
				Critical:       "⚠️ Cat food is critical!",
				CriticalAction: "Feed cat immediately",
				Low:            "Cat food is low. Please refill soon.",
				LowAction:      "Feed cat (manual)",
				Normal:         "Cat food is normal ✅",
				SummaryLine:    "- Cat food: %s%%",
				SummaryLow:     "🔴 Cat food is low (%s%%)",
				SummaryFill:    "Fill cat food tank",
				BowlWeight:     "Food weight in cat bowl: %s grams.",
				SummaryGrams:   "- Food weight (Cat): %s g",
			},
			animalDog: {
				Remaining:      "Dog food remaining: %s%%.",
				Critical:       "⚠️ Dog food is critical!",
				CriticalAction: "Feed dog immediately",
				Low:            "Dog food is low. Please refill soon.",
				LowAction:      "Feed dog (manual)",
				Normal:         "Dog food is normal ✅",
				SummaryLine:    "- Dog food: %s%%",
				SummaryLow:     "🔴 Dog food is low (%s%%)",
				SummaryFill:    "Fill dog food tank",
				BowlWeight:     "Food weight in dog bowl: %s grams.",
				SummaryGrams:   "- Food weight (Dog): %s g",
			},
		},

		WeightBoth:    "Cat: %sg | Dog: %sg",
		WeightUpdated: "Weights updated from scale sensors.",

		WaterLevel:          "Water tank level: %s%%",
		WaterDish:           "Water dish empty: %s",
		Yes:                 "Yes ⚠️",
		No:                  "No ✅",
		WaterCritical:       "⚠️ Water level is critically low. Refill the tank!",
		WaterCriticalAction: "Fill water tank",
		WaterLow:            "Water level is getting low. Consider refilling soon.",
		WaterNormal:         "Water level is normal ✅",
		DishEmptyTip:        "Water dish is empty. Check pump or enable manual refill.",
		DrainingTip:         "Draining system is currently active.",

		EntertainmentOn:        "Entertainment system is active 🟢",
		EntertainmentOnTip:     "Animals are enjoying entertainment activities.",
		EntertainmentOff:       "Entertainment system is off 🎾",
		EntertainmentOffTip:    "Enable entertainment to stimulate animals.",
		EntertainmentOffAction: "Enable entertainment system",

		SummaryHeader:        "Status Summary:",
		SummaryTank:          "- Water tank level: %s%%",
		SummaryDish:          "- Water dish empty: %s",
		SummaryYes:           "Yes",
		SummaryNo:            "No",
		SummaryEntertainment: "- Entertainment system: %s",
		SummaryActive:        "Active 🟢",
		SummaryOff:           "Off 🎾",
		SummaryWaterCritical: "🔴 Water is critical (%s%%)",
		SummaryDishEmpty:     "🟡 Water dish is empty",
		SummaryEntOff:        "🟡 Entertainment system is off",
		SummaryFillWater:     "Fill water tank",
		SummaryEnableEnt:     "Enable entertainment system",

		AllNormal: "All readings are normal ✅",
	},

	LanguageArabic: {
		Food: map[animal]foodMessages{
			animalCat: {
				Remaining:      "أكل القط المتبقي: %s%%",
				Critical:       "⚠️ أكل القط حرج!",
				CriticalAction: "أطعم القط فوراً",
				Low:            "أكل القط منخفض. يرجى إعادة التعبئة قريباً.",
				LowAction:      "أطعم القط (يدوي)",
				Normal:         "أكل القط طبيعي ✅",
				SummaryLine:    "- أكل القط: %s%%",
				SummaryLow:     "🔴 أكل القط منخفض (%s%%)",
				SummaryFill:    "املأ خزان طعام القط",
				BowlWeight:     "وزن الأكل في صحن القط: %s جرام.",
				SummaryGrams:   "- وزن الأكل (قط): %s جم",
			},
			animalDog: {
				Remaining:      "أكل الكلب المتبقي: %s%%",
				Critical:       "⚠️ أكل الكلب حرج!",
				CriticalAction: "أطعم الكلب فوراً",
				Low:            "أكل الكلب منخفض. يرجى إعادة التعبئة قريباً.",
				LowAction:      "أطعم الكلب (يدوي)",
				Normal:         "أكل الكلب طبيعي ✅",
				SummaryLine:    "- أكل الكلب: %s%%",
				SummaryLow:     "🔴 أكل الكلب منخفض (%s%%)",
				SummaryFill:    "املأ خزان طعام الكلب",
				BowlWeight:     "وزن الأكل في صحن الكلب: %s جرام.",
				SummaryGrams:   "- وزن الأكل (كلب): %s جم",
			},
		},

		WeightBoth:    "القط: %sجم | الكلب: %sجم",
		WeightUpdated: "تم تحديث الأوزان من حساسات الميزان.",

		WaterLevel:          "نسبة المياه بالتنك: %s%%",
		WaterDish:           "صحن المياه فارغ: %s",
		Yes:                 "نعم ⚠️",
		No:                  "لا ✅",
		WaterCritical:       "⚠️ مستوى المياه منخفض جدًا. يفضّل تعبئة التنك فورًا.",
		WaterCriticalAction: "تعبئة خزان الماء",
		WaterLow:            "نسبة المياه آخذة بالانخفاض. يفضّل التجهز للتعبئة.",
		WaterNormal:         "نسبة المياه ضمن الطبيعي ✅",
		DishEmptyTip:        "صحن الماء فارغ. تحقق من المضخة أو فعّل التعبئة اليدوية.",
		DrainingTip:         "نظام التصريف يعمل حاليًا.",

		EntertainmentOn:        "نظام الترفيه نشط 🟢",
		EntertainmentOnTip:     "الحيوانات تستمتع بأنشطة الترفيه.",
		EntertainmentOff:       "نظام الترفيه مغلق 🎾",
		EntertainmentOffTip:    "فعّل نظام الترفيه لتحفيز الحيوانات وتقليل الملل.",
		EntertainmentOffAction: "تفعيل نظام الترفيه",

		SummaryHeader:        "ملخص الحالة:",
		SummaryTank:          "- مستوى خزان الماء: %s%%",
		SummaryDish:          "- صحن الماء فارغ: %s",
		SummaryYes:           "نعم",
		SummaryNo:            "لا",
		SummaryEntertainment: "- نظام الترفيه: %s",
		SummaryActive:        "نشط 🟢",
		SummaryOff:           "مغلق 🎾",
		SummaryWaterCritical: "🔴 المياه حرجة (%s%%)",
		SummaryDishEmpty:     "🟡 صحن الماء فارغ",
		SummaryEntOff:        "🟡 نظام الترفيه مغلق",
		SummaryFillWater:     "املأ خزان الماء",
		SummaryEnableEnt:     "فعّل نظام الترفيه",

		AllNormal: "جميع القراءات طبيعية ✅",
	},
}

func catalogFor(lang Language) catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[LanguageEnglish]
}

// num formatea como lo muestra el dispositivo: 45 => "45", 12.5 => "12.5".
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
