package get_draft

import (
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

type WizardManager interface {
	Get(id string) (*wizard.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
