package get_available_slots

import (
	"strconv"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	resolveSlots "github.com/dipeshpuri/CleanrCrew-Patched/internal/usecase/resolve_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string          `json:"date"`
	DurationHours int             `json:"durationHours"`
	Simulated     bool            `json:"simulated"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			Label:     slot.Label,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
		Simulated:     resp.Simulated,
		Slots:         slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, hoursStr string) (*resolveSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	hours, err := strconv.ParseFloat(hoursStr, 64)
	if err != nil {
		return nil, err
	}

	return &resolveSlots.Request{
		Date:  date,
		Hours: hours,
	}, nil
}
