package get_user_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/middleware"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/bookings/models"
)

const (
	msgForbidden = "access denied"
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

// Handle GET /api/v1/users/{userId}/bookings
// Пользователь видит только собственную историю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	current := middleware.UserFromContext(r.Context())
	if current == nil || current.ID != userID {
		h.logger.Warn("GET /users/{userId}/bookings - Access denied: user_id=%s", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{UserID: userID})
	if err != nil {
		h.logger.Error("GET /users/{userId}/bookings - Failed to get bookings: user_id=%s, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/bookings - Bookings retrieved: user_id=%s, upcoming=%d, past=%d",
		userID, len(result.Upcoming), len(result.Past))
	handlers.RespondJSON(w, http.StatusOK, result)
}
