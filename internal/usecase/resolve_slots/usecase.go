package resolve_slots

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// UseCase use case подбора доступных слотов на дату.
// Никогда не возвращает ошибку из-за недоступности календаря: вызывающий
// не различает реальную разметку и симуляцию иначе как по самим слотам.
type UseCase struct {
	source       BusyIntervalSource
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source BusyIntervalSource, logger Logger) *UseCase {
	return &UseCase{
		source:       source,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет подбор слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Hours <= 0 {
		return nil, fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
	}

	durationHours := int(math.Ceil(req.Hours))
	now := uc.timeProvider.Now()

	// 2. Генерируем базовые слоты дня
	starts := baseSlotStarts(req.Date)

	// 3. Пытаемся разметить по реальному календарю
	var (
		slots     []domain.TimeSlot
		simulated bool
	)

	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	busy, err := uc.source.Busy(ctx, dayStart, dayEnd)
	if err != nil {
		// Недоступность источника - не ошибка для вызывающего
		uc.logger.Warn("ResolveSlots: busy-interval source unavailable, using simulation: %v", err)
		simulated = true
		slots = simulateSlots(starts, req.Date)
	} else {
		slots = markConflicts(starts, durationHours, busy)
	}

	// 4. Гасим прошедшие слоты (с буфером на бронирование)
	slots = filterPastSlots(slots, req.Date, now)

	uc.logger.Info("ResolveSlots: date=%s, duration=%dh, simulated=%v, slots=%d",
		req.Date.Format(domain.DateFormat), durationHours, simulated, len(slots))

	return &Response{
		Date:          req.Date,
		DurationHours: durationHours,
		Simulated:     simulated,
		Slots:         slots,
	}, nil
}
