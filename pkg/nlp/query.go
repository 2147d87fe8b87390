package nlp

import "strings"

// ClassifyQuery resolves a query-routed utterance into an action, an optional
// party and an optional time range. The original (case-preserving) text is
// needed for party extraction; matching runs on the lowered copy.
func ClassifyQuery(lower, original string) *QueryRecord {
	record := &QueryRecord{
		Kind:   "query",
		Action: QueryOverallSummary,
	}

	switch {
	case strings.Contains(lower, "ka balance") || strings.Contains(lower, "ka kitna"):
		record.Action = QueryBalance
		if party := ExtractPartyName(original); party != "" {
			record.PartyName = &party
		}
		return record

	case strings.Contains(lower, "bikri") || strings.Contains(lower, "sale"):
		record.Action = QueryTotalSales

	case strings.Contains(lower, "kharcha") || strings.Contains(lower, "expense"):
		record.Action = QueryTotalExpenses

	case strings.Contains(lower, "overall") || strings.Contains(lower, "summary") ||
		strings.Contains(lower, "profit") || strings.Contains(lower, "munafa") ||
		strings.Contains(lower, "loss") || strings.Contains(lower, "nuksaan"):
		record.Action = QueryOverallSummary
		all := RangeAll
		record.TimeRange = &all
		return record

	default:
		all := RangeAll
		record.TimeRange = &all
		return record
	}

	timeRange := ExtractTimeRange(lower)
	record.TimeRange = &timeRange
	return record
}

// ExtractTimeRange maps time markers to a reporting window. "kal" means
// yesterday only without a following "baad" ("kal baad" is the day after,
// which the store cannot aggregate yet and must not be read as yesterday).
func ExtractTimeRange(lower string) TimeRange {
	switch {
	case strings.Contains(lower, "aaj") || strings.Contains(lower, "today"):
		return RangeToday
	case strings.Contains(lower, "kal") && !strings.Contains(lower, "baad") && !strings.Contains(lower, "after"):
		return RangeYesterday
	case strings.Contains(lower, "week") || strings.Contains(lower, "hafte") || strings.Contains(lower, "hafta"):
		return RangeThisWeek
	case strings.Contains(lower, "month") || strings.Contains(lower, "mahine") || strings.Contains(lower, "mahina"):
		return RangeThisMonth
	case strings.Contains(lower, "ab tak") || strings.Contains(lower, "overall") || strings.Contains(lower, "total"):
		return RangeAll
	default:
		return RangeToday
	}
}
