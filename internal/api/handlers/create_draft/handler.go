package create_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
	"github.com/m04kA/TMS-AdminService/internal/api/middleware"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidMode        = "некорректный режим черновика, ожидается create или edit"
	msgTourNotFound       = "тур не найден"
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

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.CreateSession(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, draftform.ErrInvalidMode):
			h.logger.Warn("POST /drafts - Invalid mode: user_id=%d, mode=%s", userID, req.Mode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, draftform.ErrTourNotFound):
			h.logger.Warn("POST /drafts - Tour not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgTourNotFound)

		default:
			h.logger.Error("POST /drafts - Failed to create draft session: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft session created: session_id=%s, user_id=%d, mode=%s",
		session.ID, userID, session.Mode)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
