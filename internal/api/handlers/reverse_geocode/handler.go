package reverse_geocode

import (
	"net/http"
	"strconv"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/api/handlers"
)

const (
	msgInvalidCoords = "lat and lon are required and must be numbers"
)

type Handler struct {
	geocoder Geocoder
	logger   Logger
}

func NewHandler(geocoder Geocoder, logger Logger) *Handler {
	return &Handler{
		geocoder: geocoder,
		logger:   logger,
	}
}

// AddressResponse адрес по координатам
type AddressResponse struct {
	Address string `json:"address"`
}

// Handle GET /api/v1/addresses/reverse
// Query params: lat, lon (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		handlers.RespondBadRequest(w, msgInvalidCoords)
		return
	}

	address, err := h.geocoder.Reverse(r.Context(), lat, lon)
	if err != nil {
		// Определение адреса по координатам не критично
		h.logger.Warn("GET /addresses/reverse - Geocoder failed for lat=%f, lon=%f: %v", lat, lon, err)
		handlers.RespondJSON(w, http.StatusOK, AddressResponse{})
		return
	}

	h.logger.Info("GET /addresses/reverse - Resolved address for lat=%f, lon=%f", lat, lon)
	handlers.RespondJSON(w, http.StatusOK, AddressResponse{Address: address})
}
