package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount_Cascade(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"four digit literal wins", "4000 udhar diya", 4000},
		{"large literal not reinterpreted", "45000 hazaar", 45000},
		{"digit times hazaar", "5 hazaar ka saman", 5000},
		{"digit times sau", "3 sau rupaye", 300},
		{"digit times lakh", "2 lakh ki bikri", 200000},
		{"decimal times lakh", "2.5 lakh", 250000},
		{"word times sau", "paanch sau udhar", 500},
		{"word times hazaar", "das hazaar mila", 10000},
		{"word times lakh", "do lakh", 200000},
		{"alternate spelling hazar", "panch hazar", 5000},
		{"three digit literal", "500 kharcha hua", 500},
		{"two digit literal", "50 rupaye chai", 50},
		{"decimal literal", "2.5 rupaye", 2.5},
		{"standalone sau", "sau rupaye diye", 100},
		{"standalone hazaar", "hazaar ka nuksaan", 1000},
		{"no amount", "bikri kitni hui", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractAmount(tt.input), 1e-9)
		})
	}
}

// Bare numeral words below the multiplier class resolve to zero: "paanch" on
// its own names a count, not an amount the ledger can trust.
func TestExtractAmount_BareNumeralWord(t *testing.T) {
	assert.Zero(t, ExtractAmount("paanch"))
	assert.Zero(t, ExtractAmount("bees rupaye ka hisab nahi"))
}

func TestExtractAmount_CompoundNotSummed(t *testing.T) {
	// "paanch sau" is 500, never 5+100.
	assert.InDelta(t, 500.0, ExtractAmount("paanch sau"), 1e-9)
}
