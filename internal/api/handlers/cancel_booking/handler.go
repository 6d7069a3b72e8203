package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/middleware"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/bookings"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/bookings/models"
)

const (
	msgNotFound     = "booking not found"
	msgForbidden    = "access denied"
	msgCannotCancel = "booking cannot be cancelled"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	current := middleware.UserFromContext(r.Context())
	if current == nil {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	err := h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{UserID: current.ID})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s",
				bookingID, current.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%s, user_id=%s",
		bookingID, current.ID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
