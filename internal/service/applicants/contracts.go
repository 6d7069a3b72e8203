package applicants

import (
	"context"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// ApplicantRepository интерфейс репозитория заявок соискателей
type ApplicantRepository interface {
	Create(ctx context.Context, applicant *domain.Applicant) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
