package resolve_slots

import (
	"fmt"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// baseSlotStarts генерирует стартовые времена базовых слотов на день:
// один слот на каждый целый час с 08:00 по 16:00 включительно
func baseSlotStarts(date time.Time) []time.Time {
	starts := make([]time.Time, 0, domain.BaseSlotCount)
	for hour := domain.FirstSlotHour; hour <= domain.LastSlotHour; hour++ {
		starts = append(starts, time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location()))
	}
	return starts
}

// markConflicts размечает доступность слотов по занятым интервалам календаря.
// Слот недоступен, если интервал [start, start+duration) РЕАЛЬНО пересекается
// с любым неотменённым занятым интервалом.
//
// Пересечение - только строгие неравенства:
// - Слот 09:00-12:00, занято 11:30-13:00 → ЕСТЬ пересечение
// - Слот 09:00-12:00, занято 12:00-13:00 → НЕТ пересечения (граничат)
func markConflicts(starts []time.Time, durationHours int, busy []domain.BusyInterval) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, len(starts))

	for i, start := range starts {
		end := start.Add(time.Duration(durationHours) * time.Hour)

		conflict := false
		for j := range busy {
			if busy[j].Cancelled {
				continue
			}
			if busy[j].Overlaps(start, end) {
				conflict = true
				break
			}
		}

		slots[i] = domain.TimeSlot{
			ID:        fmt.Sprintf("slot-%d", i),
			Label:     start.Format(domain.SlotLabelFormat),
			Start:     start,
			Available: !conflict,
		}
	}

	return slots
}

// simulateSlots детерминированная псевдо-доступность на случай недоступности
// реального календаря. Seed выводится из самой даты, поэтому одна и та же дата
// всегда дает одинаковую раскладку - между запусками и сессиями.
func simulateSlots(starts []time.Time, date time.Time) []domain.TimeSlot {
	seed := date.Day() + int(date.Month()) + date.Year()

	slots := make([]domain.TimeSlot, len(starts))
	for i, start := range starts {
		busy := (seed+i)%3 == 0 || (seed*i)%5 == 0

		slots[i] = domain.TimeSlot{
			ID:        fmt.Sprintf("sim-slot-%d", i),
			Label:     start.Format(domain.SlotLabelFormat),
			Start:     start,
			Available: !busy,
		}
	}

	return slots
}

// filterPastSlots гасит слоты, начинающиеся менее чем через 30 минут, если
// запрошенная дата - сегодня. Применяется ПОСЛЕ любого из путей разметки.
func filterPastSlots(slots []domain.TimeSlot, date, now time.Time) []domain.TimeSlot {
	if !isSameDay(date, now) {
		return slots
	}

	cutoff := now.Add(domain.BookingBufferMinutes * time.Minute)
	for i := range slots {
		if slots[i].Start.Before(cutoff) {
			slots[i].Available = false
		}
	}
	return slots
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
