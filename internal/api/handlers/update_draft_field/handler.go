package update_draft_field

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
	msgUnknownField       = "неизвестное поле черновика"
	msgInvalidValue       = "некорректное значение поля"
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

// Handle PATCH /api/v1/drafts/{sessionId}/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/fields - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.FieldChangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.ApplyField(r.Context(), sessionID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, draftform.ErrSessionNotFound):
			h.logger.Warn("PATCH /drafts/{id}/fields - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, draftform.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id}/fields - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, draftform.ErrUnknownField):
			h.logger.Warn("PATCH /drafts/{id}/fields - Unknown field: session_id=%s, field=%s", sessionID, req.Field)
			handlers.RespondBadRequest(w, msgUnknownField)

		case errors.Is(err, draftform.ErrInvalidValue):
			h.logger.Warn("PATCH /drafts/{id}/fields - Invalid value: session_id=%s, field=%s, error=%v",
				sessionID, req.Field, err)
			handlers.RespondBadRequest(w, msgInvalidValue)

		default:
			h.logger.Error("PATCH /drafts/{id}/fields - Failed to apply change: session_id=%s, field=%s, error=%v",
				sessionID, req.Field, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
