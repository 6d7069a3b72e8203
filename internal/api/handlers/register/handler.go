package register

import (
	"errors"
	"net/http"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailTaken         = "email is already registered"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Registered user id=%s", resp.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
