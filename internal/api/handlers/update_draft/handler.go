package update_draft

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/draftview"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

const (
	msgDraftNotFound      = "draft not found"
	msgInvalidRequestBody = "invalid request body"
	msgUnknownAction      = "unknown action"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingContact     = "contact payload is required"
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

// Handle PATCH /api/v1/drafts/{draftId}
// Принимает одно действие над черновиком. Действия, меняющие дату или
// длительность, синхронно обновляют выдачу слотов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.manager.Get(draftID)
	if err != nil {
		if errors.Is(err, wizard.ErrDraftNotFound) {
			h.logger.Warn("PATCH /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		h.logger.Error("PATCH /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	refreshSlots := false

	switch req.Action {
	case actionSelectService:
		err = draft.SelectService(domain.ServiceType(req.ServiceType))
		refreshSlots = true

	case actionAdjustRoom:
		err = draft.AdjustRoom(domain.RoomCategory(req.Category), req.Delta)
		refreshSlots = true

	case actionSetHours:
		err = draft.SetHours(req.Hours)
		refreshSlots = true

	case actionSetDate:
		var date time.Time
		date, err = time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			h.logger.Warn("PATCH /drafts/{id} - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		draft.SetDate(date)
		refreshSlots = true

	case actionSelectSlot:
		err = draft.SelectSlot(req.SlotLabel)

	case actionSetContact:
		if req.Contact == nil {
			handlers.RespondBadRequest(w, msgMissingContact)
			return
		}
		draft.SetContact(wizard.ContactDetails{
			FirstName: req.Contact.FirstName,
			LastName:  req.Contact.LastName,
			Email:     req.Contact.Email,
			Phone:     req.Contact.Phone,
			Address:   req.Contact.Address,
			Notes:     req.Contact.Notes,
		})

	default:
		h.logger.Warn("PATCH /drafts/{id} - Unknown action: %s", req.Action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	if err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Action %s rejected: draft_id=%s, error=%v",
			req.Action, draftID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Смена услуги, даты или длительности обесценивает выдачу слотов
	if refreshSlots {
		if err := h.manager.RefreshSlots(r.Context(), draft); err != nil {
			h.logger.Error("PATCH /drafts/{id} - Failed to refresh slots: draft_id=%s, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("PATCH /drafts/{id} - Applied action %s: draft_id=%s", req.Action, draftID)
	handlers.RespondJSON(w, http.StatusOK, draftview.FromSnapshot(draft.Snapshot()))
}
