package nlp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, utterance string) *Result {
	t.Helper()
	result, err := NewRuleClassifier().Classify(context.Background(), utterance)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestRuleClassifier_LoanTaken(t *testing.T) {
	result := classify(t, "Ramesh se 500 liye udhar")

	require.NotNil(t, result.Transaction)
	tx := result.Transaction
	assert.Equal(t, "transaction", tx.Kind)
	assert.Equal(t, "add_transaction", tx.Action)
	assert.Equal(t, DirectionIn, tx.Direction)
	assert.Equal(t, TypeLoanTaken, tx.Type)
	require.NotNil(t, tx.PartyName)
	assert.Equal(t, "Ramesh", *tx.PartyName)
	assert.InDelta(t, 500.0, tx.Amount, 1e-9)
	assert.Equal(t, "today", tx.Date)
	assert.Contains(t, tx.Notes, "Ramesh")
	assert.False(t, result.LowConfidence)
}

func TestRuleClassifier_Sale(t *testing.T) {
	result := classify(t, "Aaj 2000 ki bikri hui")

	require.NotNil(t, result.Transaction)
	tx := result.Transaction
	assert.Equal(t, DirectionIn, tx.Direction)
	assert.Equal(t, TypeSale, tx.Type)
	assert.Nil(t, tx.PartyName)
	assert.InDelta(t, 2000.0, tx.Amount, 1e-9)
}

func TestRuleClassifier_ExpenseWithSubtype(t *testing.T) {
	result := classify(t, "Bijli ka bill 900 bhar diya")

	require.NotNil(t, result.Transaction)
	tx := result.Transaction
	assert.Equal(t, DirectionOut, tx.Direction)
	assert.Equal(t, TypeExpense, tx.Type)
	assert.Nil(t, tx.PartyName)
	assert.InDelta(t, 900.0, tx.Amount, 1e-9)
	assert.Contains(t, tx.Notes, "Electricity")
}

func TestRuleClassifier_SalesQuery(t *testing.T) {
	result := classify(t, "Aaj ki total bikri kitni hai?")

	require.NotNil(t, result.Query)
	q := result.Query
	assert.Equal(t, "query", q.Kind)
	assert.Equal(t, QueryTotalSales, q.Action)
	assert.Nil(t, q.PartyName)
	require.NotNil(t, q.TimeRange)
	assert.Equal(t, RangeToday, *q.TimeRange)
}

func TestRuleClassifier_BalanceQuery(t *testing.T) {
	result := classify(t, "Ramesh ka balance kitna hai?")

	require.NotNil(t, result.Query)
	q := result.Query
	assert.Equal(t, QueryBalance, q.Action)
	require.NotNil(t, q.PartyName)
	assert.Equal(t, "Ramesh", *q.PartyName)
	assert.Nil(t, q.TimeRange)
}

func TestRuleClassifier_LowConfidenceFallback(t *testing.T) {
	result := classify(t, "kuch bhi nonsense text")

	require.NotNil(t, result.Transaction)
	assert.True(t, result.LowConfidence)
	assert.Equal(t, TypeExpense, result.Transaction.Type)
	assert.Equal(t, DirectionOut, result.Transaction.Direction)
	assert.Zero(t, result.Transaction.Amount)
}

func TestRuleClassifier_EmptyInput(t *testing.T) {
	result := classify(t, "")

	require.NotNil(t, result.Transaction)
	assert.True(t, result.LowConfidence)
	assert.Equal(t, TypeExpense, result.Transaction.Type)
}

func TestRuleClassifier_Deterministic(t *testing.T) {
	first := classify(t, "Sunil ko 300 diya udhar")
	second := classify(t, "Sunil ko 300 diya udhar")
	assert.Equal(t, first, second)
}

type erroringClassifier struct{}

func (erroringClassifier) Classify(context.Context, string) (*Result, error) {
	return nil, errors.New("model unavailable")
}

type emptyClassifier struct{}

func (emptyClassifier) Classify(context.Context, string) (*Result, error) {
	return &Result{}, nil
}

func TestFallbackClassifier_PrimaryError(t *testing.T) {
	chain := NewFallbackClassifier(erroringClassifier{}, NewRuleClassifier())

	result, err := chain.Classify(context.Background(), "Ramesh se 500 liye udhar")
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)
	assert.Equal(t, TypeLoanTaken, result.Transaction.Type)
}

func TestFallbackClassifier_PrimaryEmptyResult(t *testing.T) {
	chain := NewFallbackClassifier(emptyClassifier{}, NewRuleClassifier())

	result, err := chain.Classify(context.Background(), "Aaj 2000 ki bikri hui")
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)
	assert.Equal(t, TypeSale, result.Transaction.Type)
}

func TestFallbackClassifier_PrimaryWins(t *testing.T) {
	chain := NewFallbackClassifier(NewRuleClassifier(), erroringClassifier{})

	result, err := chain.Classify(context.Background(), "Aaj 2000 ki bikri hui")
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)
}
