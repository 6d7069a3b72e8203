package create_draft

import (
	"net/http"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers/draftview"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/middleware"
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

// Handle POST /api/v1/drafts
// Доступен и гостям: авторизованный пользователь получает предзаполненные
// контактные поля и сохранение бронирования после оплаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	draft := h.manager.Create(user)

	handlers.RespondJSON(w, http.StatusCreated, draftview.FromSnapshot(draft.Snapshot()))
}
