package logout

import (
	"net/http"
	"strings"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /auth/logout - Failed to close session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Session closed")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
