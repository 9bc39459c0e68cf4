package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
	"github.com/m04kA/TMS-AdminService/internal/api/middleware"
	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform"
	createTour "github.com/m04kA/TMS-AdminService/internal/usecase/create_tour"
	updateTour "github.com/m04kA/TMS-AdminService/internal/usecase/update_tour"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgSessionNotFound = "сессия черновика не найдена"
	msgTourNotFound    = "тур не найден"
	msgForbidden       = "доступ запрещен"
	msgNotTerminalTab  = "отправка доступна только с последней вкладки"
	msgDraftIncomplete = "черновик заполнен не полностью"
	msgInvalidMode     = "некорректный режим сессии"
)

type Handler struct {
	draftForm  DraftFormService
	createTour CreateTourUseCase
	updateTour UpdateTourUseCase
	logger     Logger
}

func NewHandler(draftForm DraftFormService, create CreateTourUseCase, update UpdateTourUseCase, logger Logger) *Handler {
	return &Handler{
		draftForm:  draftForm,
		createTour: create,
		updateTour: update,
		logger:     logger,
	}
}

// Handle POST /api/v1/drafts/{sessionId}/submit
// Диспетчеризация по режиму сессии: create -> создание тура, edit -> обновление
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Читаем режим сессии для выбора use case
	session, err := h.draftForm.GetSession(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, draftform.ErrSessionNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, draftform.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to load session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	switch session.Mode {
	case string(domain.DraftModeCreate):
		h.handleCreate(w, r, sessionID, userID)
	case string(domain.DraftModeEdit):
		h.handleEdit(w, r, sessionID, userID)
	default:
		h.logger.Error("POST /drafts/{id}/submit - Unknown session mode: session_id=%s, mode=%s", sessionID, session.Mode)
		handlers.RespondBadRequest(w, msgInvalidMode)
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request, sessionID string, userID int64) {
	resp, err := h.createTour.Execute(r.Context(), &createTour.Request{SessionID: sessionID, UserID: userID})
	if err != nil {
		var rejected *tourbackend.RejectedError
		switch {
		case errors.As(err, &rejected):
			h.logger.Warn("POST /drafts/{id}/submit - Backend rejected create: session_id=%s", sessionID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, RejectionResponse{
				Error:   rejected.Message,
				Details: FromErrorDetails(rejected.Details),
			})

		case errors.Is(err, createTour.ErrNotTerminalTab):
			h.logger.Warn("POST /drafts/{id}/submit - Not on terminal tab: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNotTerminalTab)

		case errors.Is(err, createTour.ErrDraftIncomplete):
			h.logger.Warn("POST /drafts/{id}/submit - Draft incomplete: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgDraftIncomplete)

		case errors.Is(err, createTour.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createTour.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Create failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Tour created: tour_id=%s, session_id=%s, user_id=%d",
		resp.Tour.ID, sessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, SubmitResponse{Tour: resp.Tour, Mode: string(domain.DraftModeCreate)})
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request, sessionID string, userID int64) {
	resp, err := h.updateTour.Execute(r.Context(), &updateTour.Request{SessionID: sessionID, UserID: userID})
	if err != nil {
		var rejected *tourbackend.RejectedError
		switch {
		case errors.As(err, &rejected):
			h.logger.Warn("POST /drafts/{id}/submit - Backend rejected update: session_id=%s", sessionID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, RejectionResponse{
				Error:   rejected.Message,
				Details: FromErrorDetails(rejected.Details),
			})

		case errors.Is(err, updateTour.ErrNotTerminalTab):
			h.logger.Warn("POST /drafts/{id}/submit - Not on terminal tab: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNotTerminalTab)

		case errors.Is(err, updateTour.ErrDraftIncomplete):
			h.logger.Warn("POST /drafts/{id}/submit - Draft incomplete: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgDraftIncomplete)

		case errors.Is(err, updateTour.ErrTourNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Tour vanished: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, updateTour.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, updateTour.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Update failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Tour updated: tour_id=%s, session_id=%s, user_id=%d",
		resp.Tour.ID, sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, SubmitResponse{Tour: resp.Tour, Mode: string(domain.DraftModeEdit)})
}
