package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyQuery_Balance(t *testing.T) {
	record := ClassifyQuery("ramesh ka balance kitna hai?", "Ramesh ka balance kitna hai?")

	assert.Equal(t, QueryBalance, record.Action)
	require.NotNil(t, record.PartyName)
	assert.Equal(t, "Ramesh", *record.PartyName)
	assert.Nil(t, record.TimeRange)
}

func TestClassifyQuery_TotalSales(t *testing.T) {
	record := ClassifyQuery("aaj ki total bikri kitni hai?", "Aaj ki total bikri kitni hai?")

	assert.Equal(t, QueryTotalSales, record.Action)
	assert.Nil(t, record.PartyName)
	require.NotNil(t, record.TimeRange)
	assert.Equal(t, RangeToday, *record.TimeRange)
}

func TestClassifyQuery_TotalExpenses(t *testing.T) {
	record := ClassifyQuery("is mahine ka kharcha batao", "is mahine ka kharcha batao")

	assert.Equal(t, QueryTotalExpenses, record.Action)
	require.NotNil(t, record.TimeRange)
	assert.Equal(t, RangeThisMonth, *record.TimeRange)
}

func TestClassifyQuery_Summary(t *testing.T) {
	record := ClassifyQuery("overall profit batao", "overall profit batao")

	assert.Equal(t, QueryOverallSummary, record.Action)
	require.NotNil(t, record.TimeRange)
	assert.Equal(t, RangeAll, *record.TimeRange)
}

func TestClassifyQuery_Default(t *testing.T) {
	record := ClassifyQuery("hisab batao", "hisab batao")

	assert.Equal(t, QueryOverallSummary, record.Action)
	require.NotNil(t, record.TimeRange)
	assert.Equal(t, RangeAll, *record.TimeRange)
}

func TestExtractTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeRange
	}{
		{"aaj", "aaj ki bikri", RangeToday},
		{"today", "sales today", RangeToday},
		{"kal", "kal ka kharcha", RangeYesterday},
		{"kal baad guard", "kal baad ka hisab", RangeToday},
		{"hafte", "is hafte ki bikri", RangeThisWeek},
		{"mahine", "is mahine ka kharcha", RangeThisMonth},
		{"ab tak", "ab tak ka total", RangeAll},
		{"default", "bikri kitni", RangeToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTimeRange(tt.input))
		})
	}
}
