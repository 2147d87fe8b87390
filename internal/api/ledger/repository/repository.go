package ledgerRepository

import (
	"VaaniLedger/internal/entity"
	"VaaniLedger/pkg/nlp"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Ledger:   &ledgerRepo{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Ledger interface {
		CreateTransaction(c context.Context, transaction entity.LedgerTransaction) error
		GetTransactionByID(c context.Context, id string) (entity.LedgerTransaction, error)
		GetTransactionsByRange(c context.Context, userID string, timeRange nlp.TimeRange) ([]entity.LedgerTransaction, error)
		UpdateTransaction(c context.Context, transaction entity.LedgerTransaction) error
		DeleteTransaction(c context.Context, id string) error
		SumAmountByTypes(c context.Context, userID string, types []nlp.TransactionType, timeRange nlp.TimeRange) (float64, int, error)
		SumByDirection(c context.Context, userID string, timeRange nlp.TimeRange) (float64, float64, int, error)
		PartyBalance(c context.Context, userID string, partyName string) (float64, int, error)
	}

	Commit   func() error
	Rollback func() error
}

type ledgerRepo struct {
	q   SQLExecutor
	log *logrus.Logger
}
