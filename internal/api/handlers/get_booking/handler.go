package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/middleware"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/bookings"
)

const (
	msgNotFound     = "booking not found"
	msgForbidden    = "access denied"
	msgUnauthorized = "authorization required"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	current := middleware.UserFromContext(r.Context())
	if current == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Сервис сам проверит права доступа
	booking, err := h.service.GetByID(r.Context(), bookingID, current.ID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%s, user_id=%s", bookingID, current.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved: booking_id=%s, user_id=%s", bookingID, current.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
