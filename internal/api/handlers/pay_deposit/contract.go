package pay_deposit

import (
	"context"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

type WizardManager interface {
	Get(id string) (*wizard.Draft, error)
	Pay(ctx context.Context, draft *wizard.Draft) (*domain.Invoice, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
