package ledgerService

import (
	"fmt"
	"mime/multipart"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/internal/entity"
	contextPkg "VaaniLedger/pkg/context"
	"VaaniLedger/pkg/nlp"
	redisPkg "VaaniLedger/pkg/redis"
)

const summaryCacheTTL = 60 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (s *ledgerService) CreateTransaction(ctx context.Context, req ledger.CreateTransactionRequest, audioFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return "", err
	}

	audioLink, err := s.uploadAudio(requestID, audioFile)
	if err != nil {
		return "", err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	transaction := entity.LedgerTransaction{
		ID:        id,
		UserID:    req.UserID,
		Direction: nlp.Direction(req.Direction),
		Type:      nlp.TransactionType(req.Type),
		PartyName: req.PartyName,
		Amount:    req.Amount,
		TxDate:    resolveDate(req.Date),
		Notes:     req.Notes,
		AudioLink: audioLink,
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return "", err
	}

	if err := repo.Ledger.CreateTransaction(ctx, transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")

		if audioLink != "" {
			if deleteErr := s.s3.DeleteFile(audioLink); deleteErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      deleteErr.Error(),
				}).Error("Failed to delete audio file after transaction creation failure")
			}
		}

		return "", ledger.ErrCreateTransaction
	}

	s.invalidateSummaries(ctx, requestID)
	return id, nil
}

// RecordClassified persists a transaction produced by the classifier. Unlike
// the manual create path it accepts a zero amount, since low-confidence
// fallback records carry one on purpose.
func (s *ledgerService) RecordClassified(ctx context.Context, userID string, record *nlp.TransactionRecord, lowConfidence bool, audioFile *multipart.FileHeader) (entity.LedgerTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.LedgerTransaction{}, err
	}

	audioLink, err := s.uploadAudio(requestID, audioFile)
	if err != nil {
		return entity.LedgerTransaction{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.LedgerTransaction{}, err
	}

	var partyName string
	if record.PartyName != nil {
		partyName = *record.PartyName
	}

	now := time.Now()
	transaction := entity.LedgerTransaction{
		ID:            id,
		UserID:        userID,
		Direction:     record.Direction,
		Type:          record.Type,
		PartyName:     partyName,
		Amount:        record.Amount,
		TxDate:        resolveDate(record.Date),
		Notes:         record.Notes,
		AudioLink:     audioLink,
		LowConfidence: lowConfidence,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Classifier produced invalid transaction data")
		return entity.LedgerTransaction{}, err
	}

	if err := repo.Ledger.CreateTransaction(ctx, transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to record classified transaction")
		return entity.LedgerTransaction{}, ledger.ErrCreateTransaction
	}

	s.invalidateSummaries(ctx, requestID)
	return transaction, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, id string) (entity.LedgerTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.LedgerTransaction{}, err
	}

	transaction, err := repo.Ledger.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get transaction by ID")
		return entity.LedgerTransaction{}, err
	}

	if transaction.AudioLink != "" {
		audioLink, err := s.s3.PresignUrl(transaction.AudioLink)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to presign audio link")
			return entity.LedgerTransaction{}, err
		}
		transaction.AudioLink = audioLink
	}

	return transaction, nil
}

func (s *ledgerService) GetTransactionsByRange(ctx context.Context, userID string, timeRange nlp.TimeRange) ([]entity.LedgerTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Ledger.GetTransactionsByRange(ctx, userID, timeRange)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"time_range": timeRange,
			"error":      err.Error(),
		}).Error("Failed to get transactions by range")
		return nil, err
	}

	for i, transaction := range transactions {
		if transaction.AudioLink != "" {
			audioLink, err := s.s3.PresignUrl(transaction.AudioLink)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to presign audio link")
				return nil, err
			}
			transactions[i].AudioLink = audioLink
		}
	}

	return transactions, nil
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, req ledger.UpdateTransactionRequest, audioFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Ledger.GetTransactionByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": existing.UserID,
			"request_user_id":     req.UserID,
		}).Warn("Transaction does not belong to user")
		return ledger.ErrTransactionNotOwned
	}

	audioLink := existing.AudioLink

	if req.DeleteAudio && audioLink != "" {
		if err := s.s3.DeleteFile(audioLink); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to delete audio file")
		}
		audioLink = ""
	}

	if audioFile != nil {
		if audioLink != "" {
			if err := s.s3.DeleteFile(audioLink); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to delete existing audio file")
			}
		}

		audioLink, err = s.uploadAudio(requestID, audioFile)
		if err != nil {
			return err
		}
	}

	transaction := entity.LedgerTransaction{
		ID:        req.ID,
		UserID:    req.UserID,
		Direction: nlp.Direction(req.Direction),
		Type:      nlp.TransactionType(req.Type),
		PartyName: req.PartyName,
		Amount:    req.Amount,
		Notes:     req.Notes,
		AudioLink: audioLink,
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	if err := repo.Ledger.UpdateTransaction(ctx, transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return ledger.ErrUpdateTransaction
	}

	s.invalidateSummaries(ctx, requestID)
	return nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Ledger.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": existing.UserID,
			"request_user_id":     userID,
		}).Warn("Transaction does not belong to user")
		return ledger.ErrTransactionNotOwned
	}

	if existing.AudioLink != "" {
		if err := s.s3.DeleteFile(existing.AudioLink); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to delete audio file")
		}
	}

	if err := repo.Ledger.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return ledger.ErrDeleteTransaction
	}

	s.invalidateSummaries(ctx, requestID)
	return nil
}

func (s *ledgerService) ExecuteQuery(ctx context.Context, userID string, query *nlp.QueryRecord) (ledger.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	timeRange := nlp.RangeAll
	if query.TimeRange != nil {
		timeRange = *query.TimeRange
	}

	var partyName string
	if query.PartyName != nil {
		partyName = *query.PartyName
	}

	cacheKey := fmt.Sprintf("%s:%s:%s:%s", userID, query.Action, timeRange, partyName)
	if cached, err := s.redis.GetSummary(ctx, cacheKey); err == nil {
		var summary ledger.SummaryResponse
		if err := json.UnmarshalFromString(cached, &summary); err == nil {
			return summary, nil
		}
	} else if !redisPkg.IsCacheMiss(err) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Summary cache read failed")
	}

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return ledger.SummaryResponse{}, err
	}

	summary := ledger.SummaryResponse{
		Action:    string(query.Action),
		TimeRange: string(timeRange),
		PartyName: partyName,
	}

	switch query.Action {
	case nlp.QueryTotalSales:
		total, count, err := repo.Ledger.SumAmountByTypes(ctx, userID, []nlp.TransactionType{nlp.TypeSale}, timeRange)
		if err != nil {
			return ledger.SummaryResponse{}, err
		}
		summary.Total = total
		summary.TransactionCount = count

	case nlp.QueryTotalExpenses:
		total, count, err := repo.Ledger.SumAmountByTypes(ctx, userID, []nlp.TransactionType{nlp.TypeExpense, nlp.TypePurchase}, timeRange)
		if err != nil {
			return ledger.SummaryResponse{}, err
		}
		summary.Total = total
		summary.TransactionCount = count

	case nlp.QueryOverallSummary:
		totalIn, totalOut, count, err := repo.Ledger.SumByDirection(ctx, userID, timeRange)
		if err != nil {
			return ledger.SummaryResponse{}, err
		}
		summary.Total = totalIn - totalOut
		summary.TotalIn = &totalIn
		summary.TotalOut = &totalOut
		summary.TransactionCount = count

	case nlp.QueryBalance:
		if partyName == "" {
			return ledger.SummaryResponse{}, ledger.ErrPartyRequired
		}
		balance, count, err := repo.Ledger.PartyBalance(ctx, userID, partyName)
		if err != nil {
			return ledger.SummaryResponse{}, err
		}
		summary.Total = balance
		summary.TimeRange = ""
		summary.TransactionCount = count

	default:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"action":     query.Action,
		}).Warn("Unknown query action")
		return ledger.SummaryResponse{}, ledger.ErrInvalidQueryAction
	}

	if payload, err := json.MarshalToString(summary); err == nil {
		if err := s.redis.SetSummary(ctx, cacheKey, payload, summaryCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Summary cache write failed")
		}
	}

	return summary, nil
}

func (s *ledgerService) uploadAudio(requestID string, audioFile *multipart.FileHeader) (string, error) {
	if audioFile == nil {
		return "", nil
	}

	if err := s.utils.ValidateAudioFile(audioFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   audioFile.Filename,
			"error":      err.Error(),
		}).Warn("Invalid audio file")
		return "", ledger.ErrInvalidAudioFile
	}

	audioLink, err := s.s3.UploadVoiceNote(audioFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload audio file")
		return "", ledger.ErrFailedToUploadAudio
	}

	return audioLink, nil
}

func (s *ledgerService) invalidateSummaries(ctx context.Context, requestID string) {
	if err := s.redis.InvalidateSummaries(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate summary cache")
	}
}

// resolveDate turns the classifier's relative date word into a concrete
// timestamp. Anything unrecognized lands on today.
func resolveDate(date string) time.Time {
	now := time.Now()
	if date == "yesterday" {
		return now.AddDate(0, 0, -1)
	}
	return now
}
