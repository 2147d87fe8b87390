package nlp

import "context"

// FallbackClassifier composes two classifiers: results come from the primary
// unless it errors or returns an empty result, in which case the fallback
// answers. The rule engine is the usual fallback, so callers always get a
// record even when a model backend is down.
type FallbackClassifier struct {
	primary  Classifier
	fallback Classifier
}

func NewFallbackClassifier(primary, fallback Classifier) *FallbackClassifier {
	return &FallbackClassifier{primary: primary, fallback: fallback}
}

func (c *FallbackClassifier) Classify(ctx context.Context, utterance string) (*Result, error) {
	result, err := c.primary.Classify(ctx, utterance)
	if err == nil && result != nil && (result.Transaction != nil || result.Query != nil) {
		return result, nil
	}
	return c.fallback.Classify(ctx, utterance)
}
