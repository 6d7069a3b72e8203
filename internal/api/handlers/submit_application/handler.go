package submit_application

import (
	"errors"
	"net/http"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/applicants"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/applicants/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service ApplicantService
	logger  Logger
}

func NewHandler(service ApplicantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/applications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /applications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, applicants.ErrInvalidInput) {
			h.logger.Warn("POST /applications - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /applications - Failed to submit application: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /applications - Application accepted id=%s", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
