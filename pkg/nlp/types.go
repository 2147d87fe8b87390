package nlp

import "context"

// Transaction types and money-flow directions form closed sets so handler and
// repository code can switch over them exhaustively instead of comparing free
// strings.
type TransactionType string

const (
	TypeSale      TransactionType = "sale"
	TypePurchase  TransactionType = "purchase"
	TypeLoanGiven TransactionType = "loan_given"
	TypeLoanTaken TransactionType = "loan_taken"
	TypeExpense   TransactionType = "expense"
	TypeOther     TransactionType = "other"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

type QueryAction string

const (
	QueryTotalSales     QueryAction = "query_total_sales"
	QueryTotalExpenses  QueryAction = "query_total_expenses"
	QueryOverallSummary QueryAction = "query_overall_summary"
	QueryBalance        QueryAction = "query_balance"
)

type TimeRange string

const (
	RangeToday     TimeRange = "today"
	RangeYesterday TimeRange = "yesterday"
	RangeThisWeek  TimeRange = "this_week"
	RangeThisMonth TimeRange = "this_month"
	RangeAll       TimeRange = "all"
)

// Classification pairs a transaction type with its money-flow direction. Both
// are assigned together at every branch of the cascade; they are never derived
// from each other after the fact.
type Classification struct {
	Type      TransactionType `json:"type"`
	Direction Direction       `json:"direction"`
}

// TransactionRecord is the boundary contract handed to the persistence
// collaborator. Amounts are rupee values as float64, matching what the
// speech-to-text front end produces; callers needing exact arithmetic should
// convert to minor units at the storage boundary.
type TransactionRecord struct {
	Kind      string          `json:"kind"`
	Action    string          `json:"action"`
	Direction Direction       `json:"direction"`
	Type      TransactionType `json:"type"`
	PartyName *string         `json:"party_name"`
	Amount    float64         `json:"amount"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
}

// QueryRecord is the boundary contract handed to the query-execution
// collaborator.
type QueryRecord struct {
	Kind      string      `json:"kind"`
	Action    QueryAction `json:"action"`
	PartyName *string     `json:"party_name"`
	TimeRange *TimeRange  `json:"time_range"`
}

// Result carries exactly one of Transaction or Query. LowConfidence is set
// when no keyword matched and the conservative fallback branch fired; callers
// should log it but still treat the record as valid output.
type Result struct {
	Transaction   *TransactionRecord `json:"transaction,omitempty"`
	Query         *QueryRecord       `json:"query,omitempty"`
	LowConfidence bool               `json:"low_confidence"`
}

func (r *Result) IsQuery() bool {
	return r != nil && r.Query != nil
}

// Classifier converts one utterance into a structured record. Implementations
// must be safe for concurrent use; the rule-based engine holds only read-only
// keyword tables.
type Classifier interface {
	Classify(ctx context.Context, utterance string) (*Result, error)
}
