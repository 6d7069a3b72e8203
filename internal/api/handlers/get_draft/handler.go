package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/draftview"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

const msgDraftNotFound = "draft not found"

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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.manager.Get(draftID)
	if err != nil {
		if errors.Is(err, wizard.ErrDraftNotFound) {
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromSnapshot(draft.Snapshot()))
}
