package ledger

type CreateTransactionRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Direction string  `json:"direction" validate:"required,oneof=in out"`
	Type      string  `json:"type" validate:"required,oneof=sale purchase loan_given loan_taken expense other"`
	PartyName string  `json:"party_name"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"omitempty,oneof=today yesterday"`
	Notes     string  `json:"notes"`
}

type UpdateTransactionRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	Direction   string  `json:"direction" validate:"required,oneof=in out"`
	Type        string  `json:"type" validate:"required,oneof=sale purchase loan_given loan_taken expense other"`
	PartyName   string  `json:"party_name"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Notes       string  `json:"notes"`
	DeleteAudio bool    `json:"delete_audio"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Direction     string  `json:"direction"`
	Type          string  `json:"type"`
	PartyName     string  `json:"party_name,omitempty"`
	Amount        float64 `json:"amount"`
	TxDate        string  `json:"tx_date"`
	Notes         string  `json:"notes"`
	AudioLink     string  `json:"audio_link,omitempty"`
	LowConfidence bool    `json:"low_confidence"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIn      float64               `json:"total_in"`
	TotalOut     float64               `json:"total_out"`
	Net          float64               `json:"net"`
}

// SummaryResponse answers the query side of the ledger. Balance is only set
// for query_balance and follows the convention that a positive number means
// the party owes the shopkeeper.
type SummaryResponse struct {
	Action           string   `json:"action"`
	TimeRange        string   `json:"time_range,omitempty"`
	PartyName        string   `json:"party_name,omitempty"`
	Total            float64  `json:"total"`
	TotalIn          *float64 `json:"total_in,omitempty"`
	TotalOut         *float64 `json:"total_out,omitempty"`
	TransactionCount int      `json:"transaction_count"`
}
