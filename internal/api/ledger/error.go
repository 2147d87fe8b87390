package ledger

import "VaaniLedger/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrTransactionNotOwned    = response.NewError(403, "transaction does not belong to user")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidDirection       = response.NewError(400, "invalid transaction direction")
	ErrDirectionMismatch      = response.NewError(400, "transaction type does not match direction")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidTimeRange       = response.NewError(400, "invalid time range")
	ErrInvalidQueryAction     = response.NewError(400, "invalid query action")
	ErrPartyRequired          = response.NewError(400, "party name is required for balance queries")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
	ErrInvalidAudioFile       = response.NewError(400, "invalid audio file type")
	ErrFailedToUploadAudio    = response.NewError(500, "failed to upload audio file")
)
