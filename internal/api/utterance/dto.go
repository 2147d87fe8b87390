package utterance

import (
	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/pkg/nlp"
)

type ClassifyRequest struct {
	Utterance string `json:"utterance" form:"utterance" validate:"required,min=1,max=500"`
}

type ClassifyResponse struct {
	Transaction   *nlp.TransactionRecord `json:"transaction,omitempty"`
	Query         *nlp.QueryRecord       `json:"query,omitempty"`
	LowConfidence bool                   `json:"low_confidence"`
}

type ProcessRequest struct {
	Utterance string `json:"utterance" form:"utterance" validate:"required,min=1,max=500"`
}

// ProcessResponse carries whichever side of the pipeline ran: a persisted
// transaction or an executed summary, plus a short confirmation line the app
// can read back to the shopkeeper.
type ProcessResponse struct {
	Kind          string                      `json:"kind"`
	Confirmation  string                      `json:"confirmation"`
	Transaction   *ledger.TransactionResponse `json:"transaction,omitempty"`
	Summary       *ledger.SummaryResponse     `json:"summary,omitempty"`
	LowConfidence bool                        `json:"low_confidence"`
}
