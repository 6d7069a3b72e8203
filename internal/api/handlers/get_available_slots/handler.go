package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	resolveSlots "github.com/dipeshpuri/CleanrCrew-Patched/internal/usecase/resolve_slots"
)

const (
	msgMissingDate  = "date is required"
	msgMissingHours = "hours is required"
	msgInvalidInput = "invalid date or hours, expected YYYY-MM-DD and a positive number"
)

type Handler struct {
	useCase ResolveSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), hours (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	hoursStr := r.URL.Query().Get("hours")
	if hoursStr == "" {
		h.logger.Warn("GET /available-slots - Missing hours")
		handlers.RespondBadRequest(w, msgMissingHours)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, hoursStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, resolveSlots.ErrInvalidInput) {
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /available-slots - Failed to resolve slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-slots - Slots resolved: date=%s, count=%d, simulated=%v",
		dateStr, len(result.Slots), result.Simulated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
