package delete_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
	"github.com/m04kA/TMS-AdminService/internal/api/middleware"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "сессия черновика не найдена"
	msgForbidden     = "доступ запрещен"
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

// Handle DELETE /api/v1/drafts/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteSession(r.Context(), sessionID, userID); err != nil {
		switch {
		case errors.Is(err, draftform.ErrSessionNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, draftform.ErrAccessDenied):
			h.logger.Warn("DELETE /drafts/{id} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to delete session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft session deleted: session_id=%s, user_id=%d", sessionID, userID)
	w.WriteHeader(http.StatusNoContent)
}
