package ledgerRepository

import "VaaniLedger/pkg/nlp"

const (
	queryCreateTransaction = `
		INSERT INTO ledger_transactions (
			id,
			user_id,
			direction,
			type,
			party_name,
			amount,
			tx_date,
			notes,
			audio_link,
			low_confidence,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:direction,
			:type,
			:party_name,
			:amount,
			:tx_date,
			:notes,
			:audio_link,
			:low_confidence,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionById = `
		SELECT
			id,
			user_id,
			direction,
			type,
			party_name,
			amount,
			tx_date,
			notes,
			audio_link,
			low_confidence,
			created_at,
			updated_at
		FROM ledger_transactions
		WHERE id = :id
	`

	queryGetTransactionsByRange = `
		SELECT
			id,
			user_id,
			direction,
			type,
			party_name,
			amount,
			tx_date,
			notes,
			audio_link,
			low_confidence,
			created_at,
			updated_at
		FROM ledger_transactions
		WHERE user_id = :user_id%s
		ORDER BY tx_date DESC, created_at DESC
	`

	queryUpdateTransaction = `
		UPDATE ledger_transactions
		SET
			direction = :direction,
			type = :type,
			party_name = :party_name,
			amount = :amount,
			notes = :notes,
			audio_link = :audio_link,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM ledger_transactions
		WHERE id = :id
	`

	querySumAmountByTypes = `
		SELECT
			COALESCE(SUM(amount), 0) AS total,
			COUNT(*) AS count
		FROM ledger_transactions
		WHERE user_id = :user_id
			AND type IN (:types)%s
	`

	querySumByDirection = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE direction = 'in'), 0) AS total_in,
			COALESCE(SUM(amount) FILTER (WHERE direction = 'out'), 0) AS total_out,
			COUNT(*) AS count
		FROM ledger_transactions
		WHERE user_id = :user_id%s
	`

	queryPartyBalance = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE direction = 'out'), 0)
				- COALESCE(SUM(amount) FILTER (WHERE direction = 'in'), 0) AS total,
			COUNT(*) AS count
		FROM ledger_transactions
		WHERE user_id = :user_id
			AND lower(party_name) = lower(:party_name)
	`
)

// rangeFilter returns the tx_date predicate for a time range, spliced into
// the base queries above. An empty string means no date restriction.
func rangeFilter(timeRange nlp.TimeRange) string {
	switch timeRange {
	case nlp.RangeToday:
		return `
			AND tx_date >= CURRENT_DATE
			AND tx_date < CURRENT_DATE + interval '1 day'`
	case nlp.RangeYesterday:
		return `
			AND tx_date >= CURRENT_DATE - interval '1 day'
			AND tx_date < CURRENT_DATE`
	case nlp.RangeThisWeek:
		return `
			AND tx_date >= date_trunc('week', CURRENT_DATE)
			AND tx_date < date_trunc('week', CURRENT_DATE) + interval '1 week'`
	case nlp.RangeThisMonth:
		return `
			AND tx_date >= date_trunc('month', CURRENT_DATE)
			AND tx_date < date_trunc('month', CURRENT_DATE) + interval '1 month'`
	default:
		return ""
	}
}
