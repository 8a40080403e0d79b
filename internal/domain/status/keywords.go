package status

import (
	"strings"
	"unicode"
)

// Concept agrupa las palabras que disparan una regla de intent.
type Concept string

const (
	ConceptCat           Concept = "cat"
	ConceptDog           Concept = "dog"
	ConceptFood          Concept = "food"
	ConceptWeight        Concept = "weight"
	ConceptWater         Concept = "water"
	ConceptEntertainment Concept = "entertainment"
	ConceptSummary       Concept = "summary"
)

// Keywords: concepto => substrings (inglés y árabe). Las entradas árabes se
// normalizan al cargar, así que pueden escribirse con hamza o taa marbuta.
var Keywords = map[Concept][]string{
	ConceptCat:           {"cat", "قط"},
	ConceptDog:           {"dog", "كلب"},
	ConceptFood:          {"food", "أكل"},
	ConceptWeight:        {"weight", "وزن"},
	ConceptWater:         {"water", "مي", "ماء"},
	ConceptEntertainment: {"entertainment", "ترفيه", "لعب"},
	ConceptSummary:       {"status", "summary", "ملخص", "حالة"},
}

var normalizedKeywords = buildKeywordTable(Keywords)

func buildKeywordTable(in map[Concept][]string) map[Concept][]string {
	out := make(map[Concept][]string, len(in))
	for c, words := range in {
		for _, w := range words {
			w = Normalize(strings.ToLower(strings.TrimSpace(w)))
			if w != "" {
				out[c] = append(out[c], w)
			}
		}
	}
	return out
}

// alef con hamza arriba/abajo y madda => alef; taa marbuta => haa.
var arabicFolder = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ة", "ه",
)

// Normalize pliega variantes ortográficas árabes. Solo para matching;
// el texto de la respuesta no se toca.
func Normalize(s string) string {
	return arabicFolder.Replace(s)
}

// DetectLanguage: árabe si hay al menos una runa del bloque U+0600–U+06FF.
func DetectLanguage(s string) Language {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return LanguageArabic
		}
	}
	return LanguageEnglish
}

// prepare deja la pregunta como se compara: sin espacios en los bordes y en minúsculas.
func prepare(question string) string {
	return strings.ToLower(strings.TrimFunc(question, unicode.IsSpace))
}

// mentions indica si text (ya normalizado) contiene alguna palabra del concepto.
func mentions(text string, c Concept) bool {
	for _, w := range normalizedKeywords[c] {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Classify asigna exactamente un intent. Reglas en orden, gana la primera:
// cat+food, dog+food, (cat|dog)+weight, water, entertainment, summary/vacío, fallback summary.
func Classify(question string) Intent {
	q := Normalize(prepare(question))
	if q == "" {
		return IntentSummary
	}

	has := func(c Concept) bool { return mentions(q, c) }

	switch {
	case has(ConceptCat) && has(ConceptFood):
		return IntentCatFood
	case has(ConceptDog) && has(ConceptFood):
		return IntentDogFood
	case (has(ConceptCat) || has(ConceptDog)) && has(ConceptWeight):
		return IntentWeight
	case has(ConceptWater):
		return IntentWater
	case has(ConceptEntertainment):
		return IntentEntertainment
	case has(ConceptSummary):
		return IntentSummary
	default:
		return IntentSummary
	}
}
