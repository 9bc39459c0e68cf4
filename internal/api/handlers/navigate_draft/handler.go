package navigate_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
	"github.com/m04kA/TMS-AdminService/internal/api/middleware"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "сессия черновика не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidDirection   = "некорректное направление, ожидается next или prev"
	msgTabIncomplete      = "текущая вкладка заполнена не полностью"
	msgAtBoundary         = "в этом направлении вкладок больше нет"
)

type Handler struct {
	service DraftFormService
	logger  Logger
}

func NewHandler(service DraftFormService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{sessionId}/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/navigate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Navigate(r.Context(), sessionID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, draftform.ErrSessionNotFound):
			h.logger.Warn("POST /drafts/{id}/navigate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, draftform.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/navigate - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, draftform.ErrTabIncomplete):
			h.logger.Warn("POST /drafts/{id}/navigate - Tab incomplete: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgTabIncomplete)

		case errors.Is(err, draftform.ErrAtBoundary):
			h.logger.Warn("POST /drafts/{id}/navigate - At boundary: session_id=%s, direction=%s", sessionID, req.Direction)
			handlers.RespondBadRequest(w, msgAtBoundary)

		case errors.Is(err, draftform.ErrInvalidValue):
			h.logger.Warn("POST /drafts/{id}/navigate - Invalid direction: session_id=%s, direction=%s",
				sessionID, req.Direction)
			handlers.RespondBadRequest(w, msgInvalidDirection)

		default:
			h.logger.Error("POST /drafts/{id}/navigate - Failed to navigate: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
