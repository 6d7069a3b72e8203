package resolve_slots

import (
	"context"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// multiSource объединяет занятость из нескольких источников
type multiSource struct {
	sources []BusyIntervalSource
}

// MergeSources собирает источник занятости из нескольких.
// Ошибка любого источника роняет весь запрос: частичная картина занятости
// хуже детерминированной симуляции.
func MergeSources(sources ...BusyIntervalSource) BusyIntervalSource {
	return &multiSource{sources: sources}
}

func (m *multiSource) Busy(ctx context.Context, from, to time.Time) ([]domain.BusyInterval, error) {
	var merged []domain.BusyInterval
	for _, source := range m.sources {
		intervals, err := source.Busy(ctx, from, to)
		if err != nil {
			return nil, err
		}
		merged = append(merged, intervals...)
	}
	return merged, nil
}
