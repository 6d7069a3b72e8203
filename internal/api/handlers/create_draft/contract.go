package create_draft

import (
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

type WizardManager interface {
	Create(user *domain.User) *wizard.Draft
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
