package update_tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform"
	"github.com/m04kA/TMS-AdminService/internal/service/remotestate"
)

// UseCase use case сохранения изменений существующего тура
type UseCase struct {
	draftForm DraftFormService
	sync      TourSynchronizer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftForm DraftFormService, sync TourSynchronizer, logger Logger) *UseCase {
	return &UseCase{
		draftForm: draftForm,
		sync:      sync,
		logger:    logger,
	}
}

// Execute выполняет use case обновления тура.
// На успехе кеш детали перезаписывается ответом сервера, сессия остаётся
// открытой для дальнейших правок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTour: session=%s, user=%d", req.SessionID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateTour: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок готового черновика
	snapshot, err := uc.draftForm.PrepareSubmit(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, uc.mapSubmitError(req.SessionID, err)
	}

	if snapshot.Mode != domain.DraftModeEdit || snapshot.TourID == nil {
		uc.logger.Warn("UpdateTour: session=%s is in %s mode", req.SessionID, snapshot.Mode)
		return nil, ErrWrongMode
	}

	// 3. Нормализуем черновик и отправляем обновление
	payload := tourbackend.PayloadFromDraft(snapshot.Draft)

	tour, err := uc.sync.UpdateTour(ctx, *snapshot.TourID, payload)
	if err != nil {
		var rejected *tourbackend.RejectedError
		switch {
		case errors.As(err, &rejected):
			uc.logger.Warn("UpdateTour: backend rejected session=%s: %s", req.SessionID, rejected.Message)
			uc.draftForm.ApplyServerErrors(ctx, req.SessionID, rejected.Details)
			return nil, err
		case errors.Is(err, remotestate.ErrTourNotFound):
			uc.logger.Warn("UpdateTour: tour %s vanished during editing", *snapshot.TourID)
			return nil, ErrTourNotFound
		default:
			uc.logger.Error("UpdateTour: update failed for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: update tour: %v", ErrInternal, err)
		}
	}

	// 4. Успех: черновик перегидратируется ответом сервера, без редиректа
	uc.draftForm.FinishEdit(ctx, req.SessionID, tour)

	uc.logger.Info("UpdateTour: tour %s updated from session=%s", tour.ID, req.SessionID)
	return &Response{Tour: tour}, nil
}

func (uc *UseCase) mapSubmitError(sessionID string, err error) error {
	switch {
	case errors.Is(err, draftform.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, draftform.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, draftform.ErrNotTerminalTab):
		return ErrNotTerminalTab
	case errors.Is(err, draftform.ErrDraftIncomplete):
		return ErrDraftIncomplete
	default:
		uc.logger.Error("UpdateTour: prepare submit failed for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: prepare submit: %v", ErrInternal, err)
	}
}
