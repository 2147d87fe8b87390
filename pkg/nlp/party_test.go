package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPartyName_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"se pattern", "Ramesh se 500 liye udhar", "Ramesh"},
		{"ko pattern", "Sunil ko 300 diya udhar", "Sunil"},
		{"ka pattern", "Ramesh ka balance kitna hai", "Ramesh"},
		{"lowercase input title cased", "ramesh se 500 liye", "Ramesh"},
		{"no preposition", "2000 ki bikri hui", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPartyName(tt.input))
		})
	}
}

func TestExtractPartyName_Stoplist(t *testing.T) {
	// "aaj" precedes "ka" but is a time word, not a name.
	assert.Equal(t, "", ExtractPartyName("aaj ka kitna hai"))
	// "bijli" precedes "ka" but is a category word.
	assert.Equal(t, "", ExtractPartyName("Bijli ka bill 900 bhar diya"))
	// stoplisted "se" match falls through to a clean "ko" match
	assert.Equal(t, "Mohan", ExtractPartyName("maine se kuch nahi, Mohan ko diya"))
}
