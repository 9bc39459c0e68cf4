package list_tours

import (
	"net/http"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	service TourSynchronizer
	logger  Logger
}

func NewHandler(service TourSynchronizer, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours
// Query params: category, search, minPrice, maxPrice, startDate, endDate, page, limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /tours - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	page, err := h.service.Tours(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /tours - Failed to list tours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
