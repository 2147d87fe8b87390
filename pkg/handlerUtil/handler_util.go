package handlerUtil

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"VaaniLedger/internal/api/ledger"
	"VaaniLedger/internal/api/utterance"
	"VaaniLedger/pkg/log"
	"VaaniLedger/pkg/response"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// domainError pairs a sentinel with its HTTP status and the message clients
// see. Anything not listed falls through to the generic 500 at the bottom of
// Handle.
type domainError struct {
	sentinel error
	status   int
	code     string
	message  string
}

var domainErrors = []domainError{
	{ledger.ErrTransactionNotFound, fiber.StatusNotFound, "TRANSACTION_NOT_FOUND", "Transaction not found"},
	{ledger.ErrTransactionNotOwned, fiber.StatusForbidden, "TRANSACTION_NOT_OWNED", "Transaction does not belong to user"},
	{ledger.ErrInvalidTransactionType, fiber.StatusBadRequest, "INVALID_TYPE", "Invalid transaction type"},
	{ledger.ErrInvalidDirection, fiber.StatusBadRequest, "INVALID_DIRECTION", "Invalid transaction direction"},
	{ledger.ErrDirectionMismatch, fiber.StatusBadRequest, "DIRECTION_MISMATCH", "Transaction type does not match direction"},
	{ledger.ErrInvalidAmount, fiber.StatusBadRequest, "INVALID_AMOUNT", "Invalid transaction amount"},
	{ledger.ErrInvalidTimeRange, fiber.StatusBadRequest, "INVALID_TIME_RANGE", "Invalid time range"},
	{ledger.ErrInvalidQueryAction, fiber.StatusBadRequest, "INVALID_QUERY_ACTION", "Invalid query action"},
	{ledger.ErrPartyRequired, fiber.StatusBadRequest, "PARTY_REQUIRED", "Party name is required for balance queries"},
	{ledger.ErrCreateTransaction, fiber.StatusInternalServerError, "CREATE_FAILED", "Failed to create transaction"},
	{ledger.ErrUpdateTransaction, fiber.StatusInternalServerError, "UPDATE_FAILED", "Failed to update transaction"},
	{ledger.ErrDeleteTransaction, fiber.StatusInternalServerError, "DELETE_FAILED", "Failed to delete transaction"},
	{ledger.ErrInvalidAudioFile, fiber.StatusBadRequest, "INVALID_AUDIO_FILE", "Invalid audio file type"},
	{ledger.ErrFailedToUploadAudio, fiber.StatusInternalServerError, "AUDIO_UPLOAD_FAILED", "Failed to upload audio file"},
	{utterance.ErrEmptyUtterance, fiber.StatusBadRequest, "EMPTY_UTTERANCE", "Utterance must not be empty"},
	{utterance.ErrClassificationFailed, fiber.StatusInternalServerError, "CLASSIFICATION_FAILED", "Failed to classify utterance"},
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr.sentinel) {
			h.logger.WithFields(fields).Warn(domainErr.message)
			return c.Status(domainErr.status).JSON(fiber.Map{
				"error": domainErr.message,
				"code":  domainErr.code,
			})
		}
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
