package utterance

import "VaaniLedger/pkg/response"

var (
	ErrEmptyUtterance       = response.NewError(400, "utterance must not be empty")
	ErrClassificationFailed = response.NewError(500, "failed to classify utterance")
)
