package ledgerRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/internal/entity"
	contextPkg "VaaniLedger/pkg/context"
	"VaaniLedger/pkg/nlp"
)

type LedgerTransactionDB struct {
	ID            sql.NullString  `db:"id"`
	UserID        sql.NullString  `db:"user_id"`
	Direction     sql.NullString  `db:"direction"`
	Type          sql.NullString  `db:"type"`
	PartyName     sql.NullString  `db:"party_name"`
	Amount        sql.NullFloat64 `db:"amount"`
	TxDate        time.Time       `db:"tx_date"`
	Notes         sql.NullString  `db:"notes"`
	AudioLink     sql.NullString  `db:"audio_link"`
	LowConfidence sql.NullBool    `db:"low_confidence"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type aggregateRow struct {
	Total float64 `db:"total"`
	Count int64   `db:"count"`
}

type directionRow struct {
	TotalIn  float64 `db:"total_in"`
	TotalOut float64 `db:"total_out"`
	Count    int64   `db:"count"`
}

func (r *ledgerRepo) CreateTransaction(c context.Context, transaction entity.LedgerTransaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             transaction.ID,
		"user_id":        transaction.UserID,
		"direction":      string(transaction.Direction),
		"type":           string(transaction.Type),
		"party_name":     nullableString(transaction.PartyName),
		"amount":         transaction.Amount,
		"tx_date":        transaction.TxDate,
		"notes":          transaction.Notes,
		"audio_link":     transaction.AudioLink,
		"low_confidence": transaction.LowConfidence,
		"created_at":     time.Now(),
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating ledger transaction")
		return err
	}

	return nil
}

func (r *ledgerRepo) GetTransactionByID(c context.Context, id string) (entity.LedgerTransaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transaction LedgerTransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionById, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.LedgerTransaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTransactionByID no rows found")
			return entity.LedgerTransaction{}, ledger.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.LedgerTransaction{}, err
	}

	return r.makeLedgerTransaction(transaction), nil
}

func (r *ledgerRepo) GetTransactionsByRange(c context.Context, userID string, timeRange nlp.TimeRange) ([]entity.LedgerTransaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transactions []LedgerTransactionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(fmt.Sprintf(queryGetTransactionsByRange, rangeFilter(timeRange)), argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"time_range": timeRange,
		}).Error("GetTransactionsByRange named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &transactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"time_range": timeRange,
		}).Error("GetTransactionsByRange execution err")
		return nil, err
	}

	result := make([]entity.LedgerTransaction, 0, len(transactions))
	for _, transaction := range transactions {
		result = append(result, r.makeLedgerTransaction(transaction))
	}

	return result, nil
}

func (r *ledgerRepo) UpdateTransaction(c context.Context, transaction entity.LedgerTransaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         transaction.ID,
		"direction":  string(transaction.Direction),
		"type":       string(transaction.Type),
		"party_name": nullableString(transaction.PartyName),
		"amount":     transaction.Amount,
		"notes":      transaction.Notes,
		"audio_link": transaction.AudioLink,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateTransaction no rows affected")
		return ledger.ErrTransactionNotFound
	}

	return nil
}

func (r *ledgerRepo) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteTransaction no rows affected")
		return ledger.ErrTransactionNotFound
	}

	return nil
}

func (r *ledgerRepo) SumAmountByTypes(c context.Context, userID string, types []nlp.TransactionType, timeRange nlp.TimeRange) (float64, int, error) {
	requestID := contextPkg.GetRequestID(c)
	var row aggregateRow

	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, string(t))
	}

	argsKV := map[string]interface{}{
		"user_id": userID,
		"types":   typeNames,
	}

	query, args, err := sqlx.Named(fmt.Sprintf(querySumAmountByTypes, rangeFilter(timeRange)), argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumAmountByTypes named query preparation err")
		return 0, 0, err
	}

	query, args, err = sqlx.In(query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumAmountByTypes IN expansion err")
		return 0, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumAmountByTypes execution err")
		return 0, 0, err
	}

	return row.Total, int(row.Count), nil
}

func (r *ledgerRepo) SumByDirection(c context.Context, userID string, timeRange nlp.TimeRange) (float64, float64, int, error) {
	requestID := contextPkg.GetRequestID(c)
	var row directionRow

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(fmt.Sprintf(querySumByDirection, rangeFilter(timeRange)), argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByDirection named query preparation err")
		return 0, 0, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByDirection execution err")
		return 0, 0, 0, err
	}

	return row.TotalIn, row.TotalOut, int(row.Count), nil
}

func (r *ledgerRepo) PartyBalance(c context.Context, userID string, partyName string) (float64, int, error) {
	requestID := contextPkg.GetRequestID(c)
	var row aggregateRow

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"party_name": partyName,
	}

	query, args, err := sqlx.Named(queryPartyBalance, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("PartyBalance named query preparation err")
		return 0, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("PartyBalance execution err")
		return 0, 0, err
	}

	return row.Total, int(row.Count), nil
}

func (r *ledgerRepo) makeLedgerTransaction(transaction LedgerTransactionDB) entity.LedgerTransaction {
	return entity.LedgerTransaction{
		ID:            transaction.ID.String,
		UserID:        transaction.UserID.String,
		Direction:     nlp.Direction(transaction.Direction.String),
		Type:          nlp.TransactionType(transaction.Type.String),
		PartyName:     transaction.PartyName.String,
		Amount:        transaction.Amount.Float64,
		TxDate:        transaction.TxDate,
		Notes:         transaction.Notes.String,
		AudioLink:     transaction.AudioLink.String,
		LowConfidence: transaction.LowConfidence.Bool,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
