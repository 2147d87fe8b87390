package utteranceService

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	ledgerService "VaaniLedger/internal/api/ledger/service"
	"VaaniLedger/internal/api/utterance"
	"VaaniLedger/pkg/nlp"
)

type IUtteranceService interface {
	Classify(ctx context.Context, utteranceText string) (*nlp.Result, error)
	Process(ctx context.Context, userID string, utteranceText string, audioFile *multipart.FileHeader) (utterance.ProcessResponse, error)
}

type utteranceService struct {
	log           *logrus.Logger
	classifier    nlp.Classifier
	ledgerService ledgerService.ILedgerService
}

func NewUtteranceService(log *logrus.Logger, classifier nlp.Classifier, ls ledgerService.ILedgerService) IUtteranceService {
	return &utteranceService{
		log:           log,
		classifier:    classifier,
		ledgerService: ls,
	}
}
