package pay_deposit

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/draftview"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

const (
	msgDraftNotFound    = "draft not found"
	msgNotAtPaymentStep = "draft is not at the payment step"
	msgPaymentInFlight  = "payment is already being processed"
	msgAlreadyPaid      = "deposit is already paid"
)

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

// Handle POST /api/v1/drafts/{draftId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.manager.Get(draftID)
	if err != nil {
		if errors.Is(err, wizard.ErrDraftNotFound) {
			h.logger.Warn("POST /drafts/{id}/pay - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		h.logger.Error("POST /drafts/{id}/pay - Failed to get draft: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	invoice, err := h.manager.Pay(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrNotAtPaymentStep):
			h.logger.Warn("POST /drafts/{id}/pay - Not at payment step: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgNotAtPaymentStep)

		case errors.Is(err, wizard.ErrPaymentInFlight):
			h.logger.Warn("POST /drafts/{id}/pay - Payment in flight: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgPaymentInFlight)

		case errors.Is(err, wizard.ErrAlreadyPaid):
			h.logger.Warn("POST /drafts/{id}/pay - Already paid: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, wizard.ErrStepIncomplete):
			h.logger.Warn("POST /drafts/{id}/pay - Step incomplete: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /drafts/{id}/pay - Payment failed: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/pay - Deposit paid: draft_id=%s, invoice=%s", draftID, invoice.ID)
	handlers.RespondJSON(w, http.StatusOK, draftview.FromSnapshot(draft.Snapshot()))
}
