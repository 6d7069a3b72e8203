package wizard

import (
	"context"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/mailer"
	resolveSlots "github.com/dipeshpuri/CleanrCrew-Patched/internal/usecase/resolve_slots"
)

// SlotResolver интерфейс подбора доступных слотов
type SlotResolver interface {
	Execute(ctx context.Context, req *resolveSlots.Request) (*resolveSlots.Response, error)
}

// BookingStore интерфейс хранилища бронирований
// Ошибка записи не фатальна для мастера: подтверждение оплаты - единственный
// авторитетный сигнал успеха
type BookingStore interface {
	Save(ctx context.Context, booking *domain.Booking) error
}

// EmailTemplater интерфейс генерации писем
type EmailTemplater interface {
	Render(kind mailer.Kind, data mailer.TemplateData) (*mailer.EmailContent, error)
}

// EmailSender интерфейс отправки писем (опционален, может быть nil)
type EmailSender interface {
	Send(to string, content *mailer.EmailContent) error
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
