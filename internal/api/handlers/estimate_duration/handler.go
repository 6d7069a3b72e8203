package estimate_duration

import (
	"net/http"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/estimate"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownService     = "unknown service type"
	msgNegativeRoomCount  = "room counts cannot be negative"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /estimate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	offering := domain.FindOffering(domain.ServiceType(req.ServiceType))
	if offering == nil {
		h.logger.Warn("POST /estimate - Unknown service type: %s", req.ServiceType)
		handlers.RespondBadRequest(w, msgUnknownService)
		return
	}

	tally := make(domain.RoomTally, len(req.Rooms))
	for category, count := range req.Rooms {
		if count < 0 {
			handlers.RespondBadRequest(w, msgNegativeRoomCount)
			return
		}
		tally[domain.RoomCategory(category)] = count
	}

	hours := estimate.RecommendedHours(tally, offering.ID)
	quote := estimate.NewQuote(offering.HourlyRate, hours)

	h.logger.Info("POST /estimate - Estimated %.1f hours for service=%s", hours, req.ServiceType)
	handlers.RespondJSON(w, http.StatusOK, EstimateResponse{
		Hours:     hours,
		Subtotal:  quote.Subtotal,
		Tax:       quote.Tax,
		Total:     quote.Total,
		Deposit:   quote.Deposit,
		Remainder: quote.Remainder,
	})
}
