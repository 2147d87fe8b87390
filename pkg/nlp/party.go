package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// partyStopwords are frequent non-name tokens that precede "se"/"ko"/"ka" in
// ordinary speech: time words, category words, pronouns and verb participles.
// A match against one of these is rejected and the next pattern is tried.
var partyStopwords = map[string]bool{
	"aaj": true, "kal": true, "parso": true,
	"bijli": true, "chai": true, "pani": true, "bill": true, "rent": true,
	"saman": true, "maal": true, "stock": true,
	"kitna": true, "kitni": true, "total": true, "overall": true,
	"bikri": true, "kharcha": true, "udhar": true, "loan": true,
	"rupaye": true, "paisa": true, "paise": true,
	"maine": true, "mujhe": true, "usko": true, "isko": true,
	"unko": true, "inko": true, "usse": true, "isse": true,
	"kharida": true, "diya": true, "liya": true, "becha": true,
}

// The word token immediately before each preposition is the candidate name:
// "Ramesh se" (from), "Sunil ko" (to), "Ramesh ka" (possessive, balance
// queries). Order matters; "se" binds tighter to loan/sale context than "ka".
var partyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\p{L}+)\s+se\b`),
	regexp.MustCompile(`(?i)(\p{L}+)\s+ko\b`),
	regexp.MustCompile(`(?i)(\p{L}+)\s+ka\b`),
}

var titleCaser = cases.Title(language.Und)

// ExtractPartyName pulls the counterparty name out of an utterance, or ""
// when no non-stoplisted candidate exists. Output is title-cased per word.
func ExtractPartyName(text string) string {
	for _, pattern := range partyPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := m[1]
		if partyStopwords[strings.ToLower(candidate)] {
			continue
		}
		return titleCaser.String(strings.ToLower(candidate))
	}
	return ""
}
