package advance_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/draftview"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

const (
	msgDraftNotFound      = "draft not found"
	msgInvalidRequestBody = "invalid request body"
	msgUnknownDirection   = "direction must be \"next\" or \"back\""
)

// AdvanceRequest запрос на переход по шагам
type AdvanceRequest struct {
	Direction string `json:"direction"`
}

type Handler struct {
	manager WizardManager
	logger  Logger
}

func NewHandler(manager WizardManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.manager.Get(draftID)
	if err != nil {
		if errors.Is(err, wizard.ErrDraftNotFound) {
			h.logger.Warn("POST /drafts/{id}/advance - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		h.logger.Error("POST /drafts/{id}/advance - Failed to get draft: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req AdvanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/advance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Direction {
	case "next":
		err = draft.Next()
	case "back":
		err = draft.Back()
	default:
		handlers.RespondBadRequest(w, msgUnknownDirection)
		return
	}

	if err != nil {
		h.logger.Warn("POST /drafts/{id}/advance - Transition %s rejected: draft_id=%s, error=%v",
			req.Direction, draftID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	h.logger.Info("POST /drafts/{id}/advance - Moved %s: draft_id=%s, step=%d",
		req.Direction, draftID, draft.Snapshot().Step)
	handlers.RespondJSON(w, http.StatusOK, draftview.FromSnapshot(draft.Snapshot()))
}
