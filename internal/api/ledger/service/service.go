package ledgerService

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"VaaniLedger/internal/api/ledger"
	ledgerRepository "VaaniLedger/internal/api/ledger/repository"
	"VaaniLedger/internal/entity"
	"VaaniLedger/pkg/nlp"
	"VaaniLedger/pkg/redis"
	"VaaniLedger/pkg/s3"
	"VaaniLedger/pkg/utils"
)

type ILedgerService interface {
	CreateTransaction(ctx context.Context, req ledger.CreateTransactionRequest, audioFile *multipart.FileHeader) (string, error)
	RecordClassified(ctx context.Context, userID string, record *nlp.TransactionRecord, lowConfidence bool, audioFile *multipart.FileHeader) (entity.LedgerTransaction, error)
	GetTransactionByID(ctx context.Context, id string) (entity.LedgerTransaction, error)
	GetTransactionsByRange(ctx context.Context, userID string, timeRange nlp.TimeRange) ([]entity.LedgerTransaction, error)
	UpdateTransaction(ctx context.Context, req ledger.UpdateTransactionRequest, audioFile *multipart.FileHeader) error
	DeleteTransaction(ctx context.Context, id string, userID string) error
	ExecuteQuery(ctx context.Context, userID string, query *nlp.QueryRecord) (ledger.SummaryResponse, error)
}

type ledgerService struct {
	log              *logrus.Logger
	ledgerRepository ledgerRepository.Repository
	s3               s3.ItfS3
	utils            utils.IUtils
	redis            redis.IRedis
}

func NewLedgerService(log *logrus.Logger, lr ledgerRepository.Repository, s3 s3.ItfS3, utils utils.IUtils, redis redis.IRedis) ILedgerService {
	return &ledgerService{
		log:              log,
		ledgerRepository: lr,
		s3:               s3,
		utils:            utils,
		redis:            redis,
	}
}
