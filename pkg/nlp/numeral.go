package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWords maps Hindi numeral words (Latin script) to their values,
// including at least one common alternate spelling for each. Values below 100
// are only meaningful as multiplier prefixes ("paanch sau"); values of 100 and
// above can also stand alone ("sau" = 100).
var numberWords = map[string]float64{
	"ek": 1, "aek": 1,
	"do": 2, "doh": 2,
	"teen": 3, "tin": 3,
	"char": 4, "chaar": 4,
	"paanch": 5, "panch": 5,
	"chhe": 6, "che": 6, "chhah": 6,
	"saat": 7, "sat": 7,
	"aath": 8, "ath": 8,
	"nau": 9, "no": 9,
	"das": 10, "dus": 10,
	"gyarah": 11, "gyaarah": 11,
	"barah": 12, "baarah": 12,
	"terah": 13, "tehrah": 13,
	"chaudah": 14, "chodah": 14,
	"pandrah": 15, "pandra": 15,
	"solah": 16, "sola": 16,
	"satrah": 17, "satra": 17,
	"atharah": 18, "athara": 18,
	"unnis": 19, "unees": 19,
	"bees": 20, "bis": 20,
	"tees": 30, "tis": 30,
	"chaalees": 40, "chalis": 40,
	"pachaas": 50, "pachas": 50,
	"saath": 60, "saathh": 60,
	"sattar": 70, "satter": 70,
	"assi": 80, "asi": 80,
	"nabbe": 90, "nabbey": 90,
	"sau": 100, "hundred": 100,
	"hazaar": 1000, "hazar": 1000, "thousand": 1000,
	"lakh": 100000, "lac": 100000, "lakhs": 100000,
}

// Multiplier words and their factors, matched after a digit or numeral word.
var multiplierAlternation = `(lakhs?|lac|hazaa?r|thousand|sau|hundred)`

var (
	bigLiteralPattern       = regexp.MustCompile(`\b(\d{4,}(?:\.\d+)?)\b`)
	digitMultiplierPattern  = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*` + multiplierAlternation + `\b`)
	wordMultiplierPattern   = regexp.MustCompile(`\b([a-z]+)\s+` + multiplierAlternation + `\b`)
	threeDigitPattern       = regexp.MustCompile(`\b(\d{3}(?:\.\d+)?)\b`)
	smallDigitPattern       = regexp.MustCompile(`\b(\d{1,2}(?:\.\d+)?)\b`)
	nonWordBoundaryStripper = regexp.MustCompile(`[^a-z0-9.]+`)
)

func multiplierValue(word string) float64 {
	switch word {
	case "lakh", "lakhs", "lac":
		return 100000
	case "hazaar", "hazar", "thousand":
		return 1000
	case "sau", "hundred":
		return 100
	default:
		return 0
	}
}

// ExtractAmount resolves the monetary amount of an utterance through a
// priority cascade. Summing every numeral word in the string over-counts
// compound phrases ("paanch" + "sau" would read as 105 instead of 500), so
// positional patterns are tried first and whole-string summation is a last
// resort restricted to multiplier-class words.
//
// Order: 4+ digit literal, digits x multiplier, numeral word x multiplier,
// 3-digit literal, 1-2 digit literal, sum of standalone words valued >= 100,
// zero. Bare numeral words below 100 ("paanch" alone) resolve to 0.
func ExtractAmount(text string) float64 {
	lower := strings.ToLower(text)

	if m := bigLiteralPattern.FindStringSubmatch(lower); m != nil {
		return parseFloat(m[1])
	}

	if m := digitMultiplierPattern.FindStringSubmatch(lower); m != nil {
		return parseFloat(m[1]) * multiplierValue(m[2])
	}

	for _, m := range wordMultiplierPattern.FindAllStringSubmatch(lower, -1) {
		if value, ok := numberWords[m[1]]; ok && value >= 1 && value <= 99 {
			return value * multiplierValue(m[2])
		}
	}

	if m := threeDigitPattern.FindStringSubmatch(lower); m != nil {
		return parseFloat(m[1])
	}

	if m := smallDigitPattern.FindStringSubmatch(lower); m != nil {
		return parseFloat(m[1])
	}

	var total float64
	for _, token := range strings.Fields(lower) {
		token = nonWordBoundaryStripper.ReplaceAllString(token, "")
		if value, ok := numberWords[token]; ok && value >= 100 {
			total += value
		}
	}

	return total
}

func parseFloat(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}
