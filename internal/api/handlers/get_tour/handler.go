package get_tour

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
	"github.com/m04kA/TMS-AdminService/internal/service/remotestate"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgNotFound      = "тур не найден"
)

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

// Handle GET /api/v1/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID := mux.Vars(r)["tourId"]
	if tourID == "" {
		h.logger.Warn("GET /tours/{id} - Empty tour ID")
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	tour, err := h.service.Tour(r.Context(), tourID)
	if err != nil {
		switch {
		case errors.Is(err, remotestate.ErrTourNotFound):
			h.logger.Warn("GET /tours/{id} - Tour not found: tour_id=%s", tourID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /tours/{id} - Failed to get tour: tour_id=%s, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tour)
}
