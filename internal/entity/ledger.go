package entity

import (
	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/pkg/nlp"
	"time"
)

// expectedDirection pins each transaction type to the side of the ledger it
// belongs on. "other" is the only type that can sit on either side.
var expectedDirection = map[nlp.TransactionType]nlp.Direction{
	nlp.TypeSale:      nlp.DirectionIn,
	nlp.TypeLoanTaken: nlp.DirectionIn,
	nlp.TypePurchase:  nlp.DirectionOut,
	nlp.TypeLoanGiven: nlp.DirectionOut,
	nlp.TypeExpense:   nlp.DirectionOut,
}

type LedgerTransaction struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Direction     nlp.Direction       `json:"direction"`
	Type          nlp.TransactionType `json:"type"`
	PartyName     string              `json:"party_name,omitempty"`
	Amount        float64             `json:"amount"`
	TxDate        time.Time           `json:"tx_date"`
	Notes         string              `json:"notes"`
	AudioLink     string              `json:"audio_link,omitempty"`
	LowConfidence bool                `json:"low_confidence"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (t *LedgerTransaction) Validate() error {
	switch t.Type {
	case nlp.TypeSale, nlp.TypePurchase, nlp.TypeLoanGiven, nlp.TypeLoanTaken, nlp.TypeExpense, nlp.TypeOther:
	default:
		return ledger.ErrInvalidTransactionType
	}

	switch t.Direction {
	case nlp.DirectionIn, nlp.DirectionOut:
	default:
		return ledger.ErrInvalidDirection
	}

	if expected, ok := expectedDirection[t.Type]; ok && expected != t.Direction {
		return ledger.ErrDirectionMismatch
	}

	if t.Amount < 0 {
		return ledger.ErrInvalidAmount
	}

	return nil
}

func IsValidTimeRange(timeRange string) bool {
	switch nlp.TimeRange(timeRange) {
	case nlp.RangeToday, nlp.RangeYesterday, nlp.RangeThisWeek, nlp.RangeThisMonth, nlp.RangeAll:
		return true
	default:
		return false
	}
}
