package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"kitni beats sale keyword", "aaj ki total bikri kitni hai", true},
		{"kitna", "ramesh ka balance kitna hai", true},
		{"batao", "hisab batao", true},
		{"balance", "balance dikhao", true},
		{"how much", "how much did i earn", true},
		{"total plus category", "total kharcha is week", true},
		{"question mark", "bikri hui kya aaj?", true},
		{"plain transaction", "500 kharcha", false},
		{"sale transaction", "2000 ki bikri hui", false},
		{"total without category", "500 total de diya", false},
		{"loan transaction", "ramesh se 500 liye udhar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsQuery(tt.input))
		})
	}
}
