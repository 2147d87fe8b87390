package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Spelling folds applied before any keyword matching. Each replacement is a
// canonical form that no fold pattern matches again, which keeps Normalize
// idempotent.
var spellingFolds = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\b(?:rupees|rupy|rs\.?)\b`), "rupaye"},
	{regexp.MustCompile(`(?i)udhaar`), "udhar"},
	{regexp.MustCompile(`(?i)\bkharach\b`), "kharcha"},
	{regexp.MustCompile(`(?i)\bbechi\b`), "becha"},
	{regexp.MustCompile(`(?i)\bhuyi\b`), "hui"},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a raw utterance: Unicode NFC, currency symbols
// stripped, known speech-to-text spelling variants folded, whitespace
// collapsed. Casing is preserved so party names can be extracted from the
// normalized text; matching code lowercases its own copy.
func Normalize(raw string) string {
	text := norm.NFC.String(raw)
	text = strings.ReplaceAll(text, "₹", " ")

	for _, fold := range spellingFolds {
		text = fold.pattern.ReplaceAllString(text, fold.replacement)
	}

	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
