package ledgerHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/internal/entity"
	contextPkg "VaaniLedger/pkg/context"
	"VaaniLedger/pkg/handlerUtil"
	jwtPkg "VaaniLedger/pkg/jwt"
	"VaaniLedger/pkg/log"
	"VaaniLedger/pkg/nlp"
)

func (h *LedgerHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	var req ledger.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	audioFile, _ := ctx.FormFile("audio")

	id, err := h.ledgerService.CreateTransaction(c, req, audioFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Transaction created successfully",
			"id":      id,
		})
	}
}

func (h *LedgerHandler) GetTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transactions request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	timeRange := ctx.Query("range", string(nlp.RangeAll))
	if !entity.IsValidTimeRange(timeRange) {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("invalid range parameter"), ctx.Path())
	}

	transactions, err := h.ledgerService.GetTransactionsByRange(c, userData.ID, nlp.TimeRange(timeRange))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transactions")
	}

	var (
		transactionResponses []ledger.TransactionResponse
		totalIn              float64
		totalOut             float64
	)

	for _, transaction := range transactions {
		transactionResponses = append(transactionResponses, makeTransactionResponse(transaction))

		switch transaction.Direction {
		case nlp.DirectionIn:
			totalIn += transaction.Amount
		case nlp.DirectionOut:
			totalOut += transaction.Amount
		}
	}

	response := ledger.TransactionListResponse{
		Transactions: transactionResponses,
		TotalIn:      totalIn,
		TotalOut:     totalOut,
		Net:          totalIn - totalOut,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *LedgerHandler) GetTransactionByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transaction by ID request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	transaction, err := h.ledgerService.GetTransactionByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeTransactionResponse(transaction))
	}
}

func (h *LedgerHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update transaction request")

	var req ledger.UpdateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	audioFile, _ := ctx.FormFile("audio")

	if err := h.ledgerService.UpdateTransaction(c, req, audioFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction updated successfully",
		})
	}
}

func (h *LedgerHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete transaction request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.ledgerService.DeleteTransaction(c, id, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction deleted successfully",
		})
	}
}

func (h *LedgerHandler) GetSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing summary request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	action := nlp.QueryAction(ctx.Query("action", string(nlp.QueryOverallSummary)))
	switch action {
	case nlp.QueryTotalSales, nlp.QueryTotalExpenses, nlp.QueryOverallSummary, nlp.QueryBalance:
	default:
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("invalid action parameter"), ctx.Path())
	}

	query := nlp.QueryRecord{
		Kind:   "query",
		Action: action,
	}

	if timeRange := ctx.Query("range"); timeRange != "" {
		if !entity.IsValidTimeRange(timeRange) {
			return errHandler.HandleValidationError(ctx, requestID,
				errors.New("invalid range parameter"), ctx.Path())
		}
		rng := nlp.TimeRange(timeRange)
		query.TimeRange = &rng
	}

	if party := ctx.Query("party"); party != "" {
		query.PartyName = &party
	}

	summary, err := h.ledgerService.ExecuteQuery(c, userData.ID, &query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
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
