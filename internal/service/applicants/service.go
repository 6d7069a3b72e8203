package applicants

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/applicants/models"
)

// Service сервис приема заявок соискателей
type Service struct {
	applicantRepo ApplicantRepository
	validate      *validator.Validate
	logger        Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(applicantRepo ApplicantRepository, logger Logger) *Service {
	return &Service{
		applicantRepo: applicantRepo,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        logger,
	}
}

// Submit принимает заявку соискателя
func (s *Service) Submit(ctx context.Context, req *models.SubmitApplicationRequest) (*models.ApplicationResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Submit: validation failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	applicant := req.ToDomainApplicant(uuid.NewString())

	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		s.logger.Error("Submit: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: accepted application id=%s for position=%s", applicant.ID, applicant.Position)
	return &models.ApplicationResponse{
		ID:          applicant.ID,
		SubmittedAt: applicant.SubmittedAt.Format(time.RFC3339),
	}, nil
}
