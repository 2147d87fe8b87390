package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VaaniLedger/pkg/nlp"
)

func TestParseModelOutput_Transaction(t *testing.T) {
	raw := `{"kind":"transaction","action":"add_transaction","direction":"in","type":"loan_taken","party_name":"Ramesh","amount":500,"date":"today","notes":"Loan from Ramesh"}`

	result, err := ParseModelOutput(raw)
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)
	assert.Equal(t, nlp.TypeLoanTaken, result.Transaction.Type)
	assert.Equal(t, nlp.DirectionIn, result.Transaction.Direction)
	require.NotNil(t, result.Transaction.PartyName)
	assert.Equal(t, "Ramesh", *result.Transaction.PartyName)
	assert.InDelta(t, 500.0, result.Transaction.Amount, 1e-9)
}

func TestParseModelOutput_Query(t *testing.T) {
	raw := `{"kind":"query","action":"query_total_sales","party_name":null,"time_range":"today"}`

	result, err := ParseModelOutput(raw)
	require.NoError(t, err)
	require.NotNil(t, result.Query)
	assert.Equal(t, nlp.QueryTotalSales, result.Query.Action)
	assert.Nil(t, result.Query.PartyName)
	require.NotNil(t, result.Query.TimeRange)
	assert.Equal(t, nlp.RangeToday, *result.Query.TimeRange)
}

func TestParseModelOutput_WrappedInProse(t *testing.T) {
	raw := "Sure, here is the JSON:\n```json\n" +
		`{"kind":"query","action":"query_balance","party_name":"Ramesh","time_range":null}` +
		"\n```\nLet me know if you need anything else."

	result, err := ParseModelOutput(raw)
	require.NoError(t, err)
	require.NotNil(t, result.Query)
	assert.Equal(t, nlp.QueryBalance, result.Query.Action)
	assert.Nil(t, result.Query.TimeRange)
}

func TestParseModelOutput_NoJSON(t *testing.T) {
	_, err := ParseModelOutput("I could not understand that utterance.")
	assert.Error(t, err)
}

func TestParseModelOutput_UnknownKind(t *testing.T) {
	_, err := ParseModelOutput(`{"kind":"greeting","text":"namaste"}`)
	assert.Error(t, err)
}

func TestParseModelOutput_OffSchemaTransaction(t *testing.T) {
	raw := `{"kind":"transaction","action":"add_transaction","direction":"sideways","type":"sale","amount":100}`

	_, err := ParseModelOutput(raw)
	assert.Error(t, err)
}

func TestParseModelOutput_OffSchemaQueryAction(t *testing.T) {
	raw := `{"kind":"query","action":"query_everything"}`

	_, err := ParseModelOutput(raw)
	assert.Error(t, err)
}

func TestParseModelOutput_MalformedJSON(t *testing.T) {
	_, err := ParseModelOutput(`{"kind":"transaction",`)
	assert.Error(t, err)
}
