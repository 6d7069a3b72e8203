package get_services

import (
	"net/http"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	HourlyRate       float64 `json:"hourlyRate"`
	RecommendedHours float64 `json:"recommendedHours"`
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := domain.ServiceCatalog

	resp := make([]ServiceResponse, 0, len(catalog))
	for _, offering := range catalog {
		resp = append(resp, ServiceResponse{
			ID:               string(offering.ID),
			Title:            offering.Title,
			Description:      offering.Description,
			HourlyRate:       offering.HourlyRate,
			RecommendedHours: offering.RecommendedHours,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
