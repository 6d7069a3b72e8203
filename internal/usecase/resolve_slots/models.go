package resolve_slots

import (
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// Request модель запроса на подбор слотов
type Request struct {
	Date  time.Time // дата без времени
	Hours float64   // длительность уборки; округляется вверх до целого часа
}

// Response модель ответа с кандидатами-слотами
type Response struct {
	Date          time.Time
	DurationHours int  // длительность, использованная при проверке конфликтов
	Simulated     bool // true, если реальный источник был недоступен
	Slots         []domain.TimeSlot
}
