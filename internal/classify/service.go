package classify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cimax123/asistente-contable/internal/repository"
)

// Service trains company models from the base training workbook merged
// with the user corrections accumulated since.
type Service struct {
	logger      *slog.Logger
	corrections repository.CorrectionRepository
}

func NewService(corrections repository.CorrectionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, corrections: corrections}
}

// TrainForCompany builds the model for one company. Stored corrections are
// appended after the workbook rows so a correction can outvote a stale
// example under the per-label counts.
func (s *Service) TrainForCompany(ctx context.Context, company, trainingPath string) (*Model, error) {
	examples, err := LoadExamples(trainingPath)
	if err != nil {
		return nil, err
	}

	if s.corrections != nil {
		stored, err := s.corrections.ListByCompany(ctx, company)
		if err != nil {
			return nil, err
		}
		for _, c := range stored {
			examples = append(examples, Example{Text: strings.ToLower(c.Description), Label: c.Account})
		}
		s.logger.Info("classify.corrections.merged", "company", company, "corrections", len(stored))
	}

	return Train(examples, s.logger)
}
