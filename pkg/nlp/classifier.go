package nlp

import (
	"context"
	"strings"
)

// RuleClassifier is the deterministic keyword-cascade engine. It holds no
// mutable state, so a single value can serve any number of concurrent
// callers.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify runs the full pipeline: normalization, query routing, then either
// the query classifier or amount/party extraction plus the transaction
// cascade. Every input yields a valid record; there is no failure path.
func (c *RuleClassifier) Classify(_ context.Context, utterance string) (*Result, error) {
	normalized := Normalize(utterance)
	lower := strings.ToLower(normalized)

	if IsQuery(lower) {
		return &Result{Query: ClassifyQuery(lower, normalized)}, nil
	}

	amount := ExtractAmount(normalized)
	partyName := ExtractPartyName(normalized)
	cls, matched := ClassifyTransaction(lower, partyName)

	return &Result{
		Transaction:   BuildTransactionRecord(cls, amount, partyName, utterance),
		LowConfidence: !matched,
	}, nil
}
