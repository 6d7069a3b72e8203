package suggest_addresses

import (
	"net/http"
	"strconv"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
)

const (
	msgMissingQuery = "q is required"

	defaultLimit = 5
	maxLimit     = 10
)

type Handler struct {
	geocoder    Geocoder
	countryCode string
	logger      Logger
}

func NewHandler(geocoder Geocoder, countryCode string, logger Logger) *Handler {
	return &Handler{
		geocoder:    geocoder,
		countryCode: countryCode,
		logger:      logger,
	}
}

// SuggestionResponse вариант адреса
type SuggestionResponse struct {
	DisplayName string `json:"displayName"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Handle GET /api/v1/addresses/suggest
// Query params: q (required), limit (optional, max 10)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err == nil && parsed > 0 && parsed <= maxLimit {
			limit = parsed
		}
	}

	suggestions, err := h.geocoder.Search(r.Context(), query, h.countryCode, limit)
	if err != nil {
		// Подсказки адресов не критичны, возвращаем пустой список
		h.logger.Warn("GET /addresses/suggest - Geocoder failed for query=%q: %v", query, err)
		handlers.RespondJSON(w, http.StatusOK, []SuggestionResponse{})
		return
	}

	resp := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		resp = append(resp, SuggestionResponse{
			DisplayName: s.DisplayName,
			Lat:         s.Lat,
			Lon:         s.Lon,
		})
	}

	h.logger.Info("GET /addresses/suggest - Returned %d suggestions for query=%q", len(resp), query)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
