package ledgerHandler

import (
	ledgerService "VaaniLedger/internal/api/ledger/service"
	"VaaniLedger/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LedgerHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	ledgerService ledgerService.ILedgerService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ledgerService ledgerService.ILedgerService,
) *LedgerHandler {
	return &LedgerHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		ledgerService: ledgerService,
	}
}

func (h *LedgerHandler) Start(srv fiber.Router) {
	ledger := srv.Group("/ledger")

	ledger.Post("/transactions", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	ledger.Get("/transactions", h.middleware.NewTokenMiddleware, h.GetTransactions)
	ledger.Get("/transactions/:id", h.GetTransactionByID)
	ledger.Put("/transactions", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	ledger.Delete("/transactions/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)
	ledger.Get("/summary", h.middleware.NewTokenMiddleware, h.GetSummary)
}
