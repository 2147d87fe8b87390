package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"VaaniLedger/database/postgres"
	ledgerHandler "VaaniLedger/internal/api/ledger/handler"
	ledgerRepository "VaaniLedger/internal/api/ledger/repository"
	ledgerService "VaaniLedger/internal/api/ledger/service"
	utteranceHandler "VaaniLedger/internal/api/utterance/handler"
	utteranceService "VaaniLedger/internal/api/utterance/service"
	"VaaniLedger/internal/middleware"
	"VaaniLedger/pkg/gemini"
	"VaaniLedger/pkg/nlp"
	"VaaniLedger/pkg/redis"
	"VaaniLedger/pkg/s3"
	"VaaniLedger/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	redisServer  redis.IRedis
	geminiClient gemini.IGemini
	s3Client     s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithGeminiClient is best effort: without an API key the server still runs
// on the rule engine alone.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		if os.Getenv("GEMINI_API_KEY") == "" {
			if s.log != nil {
				s.log.Info("GEMINI_API_KEY not set, classification will use rules only")
			}
			return nil
		}

		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Ledger domain
	ledgerRepo := ledgerRepository.New(s.db, s.log)
	ledgerServices := ledgerService.NewLedgerService(s.log, ledgerRepo, s.s3Client, s.utils, s.redisServer)
	ledgerHandlers := ledgerHandler.New(s.log, s.validator, s.middleware, ledgerServices)

	// Utterance domain
	utteranceServices := utteranceService.NewUtteranceService(s.log, s.buildClassifier(), ledgerServices)
	utteranceHandlers := utteranceHandler.New(s.log, s.validator, s.middleware, utteranceServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, ledgerHandlers, utteranceHandlers)
}

// buildClassifier composes the classification chain: the model answers first
// when configured, and the rule engine backs it up.
func (s *Server) buildClassifier() nlp.Classifier {
	rules := nlp.NewRuleClassifier()

	if s.geminiClient == nil {
		return rules
	}

	return nlp.NewFallbackClassifier(s.geminiClient, rules)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
