package suggest_addresses

import (
	"context"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/integrations/nominatim"
)

type Geocoder interface {
	Search(ctx context.Context, query, countryCode string, limit int) ([]nominatim.Suggestion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
