package nlp

import "strings"

// Strong interrogative markers. Any one of these routes the utterance to the
// query classifier regardless of transaction keywords, since phrases like
// "bikri kitni hui" would otherwise trip the sale cascade.
var queryKeywords = []string{
	"kitna", "kitni", "batao", "bataye", "bata do",
	"dikhao", "dikha do",
	"balance", "summary",
	"how much", "show me", "tell me",
}

// Transaction-category words that turn a bare "total" into a query
// ("total kharcha kitna hai") without hijacking amounts like "500 total".
var totalCategoryWords = []string{
	"bikri", "kharcha", "sales", "sale", "expense",
	"profit", "loss", "munafa", "nuksaan",
}

// IsQuery reports whether a lowercased, normalized utterance asks about
// aggregate state instead of recording an event. Query detection runs before
// transaction classification by design.
func IsQuery(lower string) bool {
	for _, keyword := range queryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	if strings.Contains(lower, "total") {
		for _, category := range totalCategoryWords {
			if strings.Contains(lower, category) {
				return true
			}
		}
	}

	return strings.Contains(lower, "?")
}
