package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CurrencySymbol(t *testing.T) {
	assert.Equal(t, "500 ki bikri", Normalize("₹500 ki bikri"))
	assert.Equal(t, "500", Normalize("  ₹ 500  "))
}

func TestNormalize_SpellingFolds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rupees", "500 rupees diye", "500 rupaye diye"},
		{"rupy", "paanch sau rupy", "paanch sau rupaye"},
		{"udhaar", "Ramesh se udhaar liya", "Ramesh se udhar liya"},
		{"kharach", "kharach ho gaya", "kharcha ho gaya"},
		{"bechi", "saari cheez bechi", "saari cheez becha"},
		{"huyi", "bikri huyi", "bikri hui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_WhitespaceCollapse(t *testing.T) {
	assert.Equal(t, "aaj ki bikri", Normalize("  aaj \t ki\n  bikri "))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Ramesh se 500 liye udhaar",
		"₹2000 rupees ki bikri huyi",
		"Bijli ka bill 900 bhar diya",
		"",
		"kharach   bahut hua",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestNormalize_PreservesCase(t *testing.T) {
	assert.Equal(t, "Ramesh se 500 liye", Normalize("Ramesh se 500 liye"))
}
