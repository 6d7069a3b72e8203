package resolve_slots

import (
	"context"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// BusyIntervalSource источник занятых интервалов (реальный календарь)
// Любая ошибка источника приводит к переходу на детерминированную симуляцию
type BusyIntervalSource interface {
	// Busy возвращает занятые интервалы за окно [from, to]
	Busy(ctx context.Context, from, to time.Time) ([]domain.BusyInterval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
