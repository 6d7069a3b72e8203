package login

import (
	"errors"
	"net/http"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid email or password"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Opened session for user id=%s", resp.User.ID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
