package register

import (
	"context"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth/models"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
