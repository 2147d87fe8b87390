package utteranceHandler

import (
	utteranceService "VaaniLedger/internal/api/utterance/service"
	"VaaniLedger/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UtteranceHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	utteranceService utteranceService.IUtteranceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	utteranceService utteranceService.IUtteranceService,
) *UtteranceHandler {
	return &UtteranceHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		utteranceService: utteranceService,
	}
}

func (h *UtteranceHandler) Start(srv fiber.Router) {
	utterance := srv.Group("/utterance")

	utterance.Post("/classify", h.Classify)
	utterance.Post("/process", h.middleware.NewTokenMiddleware, h.Process)
}
