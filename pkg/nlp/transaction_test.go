package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTransaction_LoanPhrases(t *testing.T) {
	cls, matched := ClassifyTransaction("ramesh se 500 liye udhar", "Ramesh")
	assert.True(t, matched)
	assert.Equal(t, Classification{TypeLoanTaken, DirectionIn}, cls)

	cls, matched = ClassifyTransaction("sunil ko 300 diya udhar", "Sunil")
	assert.True(t, matched)
	assert.Equal(t, Classification{TypeLoanGiven, DirectionOut}, cls)
}

func TestClassifyTransaction_GenericLoan(t *testing.T) {
	// Verb disambiguation comes before preposition context.
	cls, _ := ClassifyTransaction("udhar mila tha", "")
	assert.Equal(t, Classification{TypeLoanTaken, DirectionIn}, cls)

	// Preposition context when no verb decides.
	cls, _ = ClassifyTransaction("mohan se udhar", "Mohan")
	assert.Equal(t, Classification{TypeLoanTaken, DirectionIn}, cls)

	cls, _ = ClassifyTransaction("mohan ko udhar", "Mohan")
	assert.Equal(t, Classification{TypeLoanGiven, DirectionOut}, cls)

	// Bare loan mention defaults to loan_given: a conservative guess.
	cls, _ = ClassifyTransaction("500 udhar", "")
	assert.Equal(t, Classification{TypeLoanGiven, DirectionOut}, cls)
}

func TestClassifyTransaction_ExpenseAndSale(t *testing.T) {
	cls, _ := ClassifyTransaction("bijli ka bill 900 bhar diya", "")
	assert.Equal(t, Classification{TypeExpense, DirectionOut}, cls)

	cls, _ = ClassifyTransaction("aaj 2000 ki bikri hui", "")
	assert.Equal(t, Classification{TypeSale, DirectionIn}, cls)

	cls, _ = ClassifyTransaction("kiraya de diya", "")
	assert.Equal(t, Classification{TypeExpense, DirectionOut}, cls)
}

func TestClassifyTransaction_ProximityTieBreak(t *testing.T) {
	// Sale keyword within the window of the numeral, expense keyword outside:
	// sale wins despite expense's higher cascade priority.
	cls, _ := ClassifyTransaction("kharcha mat likho aaj 2000 ki bikri hui", "")
	assert.Equal(t, Classification{TypeSale, DirectionIn}, cls)

	// Both keywords near the numeral: expense keeps its priority.
	cls, _ = ClassifyTransaction("aaj 500 bikri kharcha", "")
	assert.Equal(t, Classification{TypeExpense, DirectionOut}, cls)
}

func TestClassifyTransaction_DirectionVerbs(t *testing.T) {
	cls, _ := ClassifyTransaction("2000 jama hua", "")
	assert.Equal(t, Classification{TypeSale, DirectionIn}, cls)

	cls, _ = ClassifyTransaction("payment kar di 700 ki", "")
	assert.Equal(t, Classification{TypeExpense, DirectionOut}, cls)
}

func TestClassifyTransaction_StandaloneVerbs(t *testing.T) {
	// Giving without loan context is an expense.
	cls, _ := ClassifyTransaction("mali ko 100 diye", "Mali")
	assert.Equal(t, Classification{TypeExpense, DirectionOut}, cls)

	// Taking without loan or inventory context is income.
	cls, _ = ClassifyTransaction("customer se 250 liye", "Customer")
	assert.Equal(t, Classification{TypeSale, DirectionIn}, cls)

	// Inventory words suppress the income reading of "liya".
	cls, _ = ClassifyTransaction("saman liya 250 ka", "")
	assert.Equal(t, Classification{TypeExpense, DirectionOut}, cls)
}

func TestClassifyTransaction_PassiveMarker(t *testing.T) {
	cls, matched := ClassifyTransaction("aaj 300 ki hui", "")
	assert.True(t, matched)
	assert.Equal(t, Classification{TypeSale, DirectionIn}, cls)
}

func TestClassifyTransaction_ConservativeFallback(t *testing.T) {
	cls, matched := ClassifyTransaction("kuch samajh nahi", "")
	assert.False(t, matched)
	assert.Equal(t, Classification{TypeExpense, DirectionOut}, cls)
}
