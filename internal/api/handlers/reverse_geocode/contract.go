package reverse_geocode

import "context"

type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
