package submit_application

import (
	"context"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/applicants/models"
)

type ApplicantService interface {
	Submit(ctx context.Context, req *models.SubmitApplicationRequest) (*models.ApplicationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
