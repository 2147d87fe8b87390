package utteranceService

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/internal/api/utterance"
	"VaaniLedger/internal/entity"
	contextPkg "VaaniLedger/pkg/context"
	"VaaniLedger/pkg/nlp"
)

func (s *utteranceService) Classify(ctx context.Context, utteranceText string) (*nlp.Result, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(utteranceText) == "" {
		return nil, utterance.ErrEmptyUtterance
	}

	result, err := s.classifier.Classify(ctx, utteranceText)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Classification failed")
		return nil, utterance.ErrClassificationFailed
	}

	if result.LowConfidence {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"utterance":  utteranceText,
		}).Warn("Low confidence classification")
	}

	return result, nil
}

func (s *utteranceService) Process(ctx context.Context, userID string, utteranceText string, audioFile *multipart.FileHeader) (utterance.ProcessResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	result, err := s.Classify(ctx, utteranceText)
	if err != nil {
		return utterance.ProcessResponse{}, err
	}

	if result.IsQuery() {
		summary, err := s.ledgerService.ExecuteQuery(ctx, userID, result.Query)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"action":     result.Query.Action,
				"error":      err.Error(),
			}).Error("Failed to execute query")
			return utterance.ProcessResponse{}, err
		}

		return utterance.ProcessResponse{
			Kind:         "query",
			Confirmation: summaryConfirmation(summary),
			Summary:      &summary,
		}, nil
	}

	transaction, err := s.ledgerService.RecordClassified(ctx, userID, result.Transaction, result.LowConfidence, audioFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to record classified transaction")
		return utterance.ProcessResponse{}, err
	}

	response := makeTransactionResponse(transaction)

	return utterance.ProcessResponse{
		Kind:          "transaction",
		Confirmation:  transactionConfirmation(transaction),
		Transaction:   &response,
		LowConfidence: result.LowConfidence,
	}, nil
}

func transactionConfirmation(transaction entity.LedgerTransaction) string {
	var line string

	switch transaction.Type {
	case nlp.TypeSale:
		line = fmt.Sprintf("Recorded sale of ₹%.0f", transaction.Amount)
	case nlp.TypeLoanTaken:
		line = fmt.Sprintf("Recorded loan of ₹%.0f", transaction.Amount)
		if transaction.PartyName != "" {
			line += " from " + transaction.PartyName
		}
	case nlp.TypeLoanGiven:
		line = fmt.Sprintf("Recorded loan of ₹%.0f", transaction.Amount)
		if transaction.PartyName != "" {
			line += " to " + transaction.PartyName
		}
	case nlp.TypePurchase:
		line = fmt.Sprintf("Recorded purchase of ₹%.0f", transaction.Amount)
	case nlp.TypeExpense:
		line = fmt.Sprintf("Recorded expense of ₹%.0f", transaction.Amount)
	default:
		line = fmt.Sprintf("Recorded entry of ₹%.0f", transaction.Amount)
	}

	if transaction.LowConfidence {
		line += " (needs review)"
	}

	return line
}

func summaryConfirmation(summary ledger.SummaryResponse) string {
	switch nlp.QueryAction(summary.Action) {
	case nlp.QueryTotalSales:
		return fmt.Sprintf("Total sales for %s: ₹%.0f", humanRange(summary.TimeRange), summary.Total)
	case nlp.QueryTotalExpenses:
		return fmt.Sprintf("Total expenses for %s: ₹%.0f", humanRange(summary.TimeRange), summary.Total)
	case nlp.QueryBalance:
		switch {
		case summary.Total > 0:
			return fmt.Sprintf("%s owes you ₹%.0f", summary.PartyName, summary.Total)
		case summary.Total < 0:
			return fmt.Sprintf("You owe %s ₹%.0f", summary.PartyName, -summary.Total)
		default:
			return fmt.Sprintf("Account with %s is settled", summary.PartyName)
		}
	default:
		var totalIn, totalOut float64
		if summary.TotalIn != nil {
			totalIn = *summary.TotalIn
		}
		if summary.TotalOut != nil {
			totalOut = *summary.TotalOut
		}
		return fmt.Sprintf("For %s, in: ₹%.0f, out: ₹%.0f, net: ₹%.0f",
			humanRange(summary.TimeRange), totalIn, totalOut, summary.Total)
	}
}

func humanRange(timeRange string) string {
	switch nlp.TimeRange(timeRange) {
	case nlp.RangeToday:
		return "today"
	case nlp.RangeYesterday:
		return "yesterday"
	case nlp.RangeThisWeek:
		return "this week"
	case nlp.RangeThisMonth:
		return "this month"
	default:
		return "all time"
	}
}

func makeTransactionResponse(transaction entity.LedgerTransaction) ledger.TransactionResponse {
	return ledger.TransactionResponse{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		Direction:     string(transaction.Direction),
		Type:          string(transaction.Type),
		PartyName:     transaction.PartyName,
		Amount:        transaction.Amount,
		TxDate:        transaction.TxDate.Format("2006-01-02"),
		Notes:         transaction.Notes,
		AudioLink:     transaction.AudioLink,
		LowConfidence: transaction.LowConfidence,
		CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     transaction.UpdatedAt.Format(time.RFC3339),
	}
}
