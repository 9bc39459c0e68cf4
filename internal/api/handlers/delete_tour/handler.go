package delete_tour

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
	"github.com/m04kA/TMS-AdminService/internal/api/middleware"
	"github.com/m04kA/TMS-AdminService/internal/service/remotestate"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle DELETE /api/v1/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID := mux.Vars(r)["tourId"]
	if tourID == "" {
		h.logger.Warn("DELETE /tours/{id} - Empty tour ID")
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /tours/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteTour(r.Context(), tourID); err != nil {
		switch {
		case errors.Is(err, remotestate.ErrTourNotFound):
			h.logger.Warn("DELETE /tours/{id} - Tour not found: tour_id=%s", tourID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tours/{id} - Failed to delete tour: tour_id=%s, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tours/{id} - Tour deleted: tour_id=%s, user_id=%d", tourID, userID)
	w.WriteHeader(http.StatusNoContent)
}
