package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/pkg/nlp"
)

func validTransaction() LedgerTransaction {
	return LedgerTransaction{
		ID:        "01HZX3N3V1",
		UserID:    "user-1",
		Direction: nlp.DirectionIn,
		Type:      nlp.TypeSale,
		Amount:    2000,
	}
}

func TestLedgerTransaction_Validate(t *testing.T) {
	tx := validTransaction()
	assert.NoError(t, tx.Validate())
}

func TestLedgerTransaction_Validate_UnknownType(t *testing.T) {
	tx := validTransaction()
	tx.Type = "donation"
	assert.ErrorIs(t, tx.Validate(), ledger.ErrInvalidTransactionType)
}

func TestLedgerTransaction_Validate_UnknownDirection(t *testing.T) {
	tx := validTransaction()
	tx.Direction = "sideways"
	assert.ErrorIs(t, tx.Validate(), ledger.ErrInvalidDirection)
}

func TestLedgerTransaction_Validate_DirectionMismatch(t *testing.T) {
	cases := []struct {
		name      string
		txType    nlp.TransactionType
		direction nlp.Direction
	}{
		{"sale cannot be out", nlp.TypeSale, nlp.DirectionOut},
		{"loan taken cannot be out", nlp.TypeLoanTaken, nlp.DirectionOut},
		{"expense cannot be in", nlp.TypeExpense, nlp.DirectionIn},
		{"purchase cannot be in", nlp.TypePurchase, nlp.DirectionIn},
		{"loan given cannot be in", nlp.TypeLoanGiven, nlp.DirectionIn},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tx.Type = tc.txType
			tx.Direction = tc.direction
			assert.ErrorIs(t, tx.Validate(), ledger.ErrDirectionMismatch)
		})
	}
}

func TestLedgerTransaction_Validate_OtherAllowsBothDirections(t *testing.T) {
	tx := validTransaction()
	tx.Type = nlp.TypeOther

	tx.Direction = nlp.DirectionIn
	assert.NoError(t, tx.Validate())

	tx.Direction = nlp.DirectionOut
	assert.NoError(t, tx.Validate())
}

func TestLedgerTransaction_Validate_NegativeAmount(t *testing.T) {
	tx := validTransaction()
	tx.Amount = -5
	assert.ErrorIs(t, tx.Validate(), ledger.ErrInvalidAmount)
}

func TestLedgerTransaction_Validate_ZeroAmountAllowed(t *testing.T) {
	tx := validTransaction()
	tx.Type = nlp.TypeExpense
	tx.Direction = nlp.DirectionOut
	tx.Amount = 0
	tx.LowConfidence = true
	assert.NoError(t, tx.Validate())
}

func TestIsValidTimeRange(t *testing.T) {
	for _, valid := range []string{"today", "yesterday", "this_week", "this_month", "all"} {
		assert.True(t, IsValidTimeRange(valid), valid)
	}
	assert.False(t, IsValidTimeRange("last_year"))
	assert.False(t, IsValidTimeRange(""))
}
