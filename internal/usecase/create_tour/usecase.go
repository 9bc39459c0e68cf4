package create_tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform"
)

// UseCase use case создания тура из готового черновика
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

// Execute выполняет use case создания тура.
// Отправка идёт только после проверки готовности черновика; отклонённая
// бэкендом отправка раскладывает ошибки сервера обратно по полям формы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTour: session=%s, user=%d", req.SessionID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTour: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок готового черновика; незаполненные вкладки блокируют отправку
	snapshot, err := uc.draftForm.PrepareSubmit(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, uc.mapSubmitError(req.SessionID, err)
	}

	if snapshot.Mode != domain.DraftModeCreate {
		uc.logger.Warn("CreateTour: session=%s is in %s mode", req.SessionID, snapshot.Mode)
		return nil, ErrWrongMode
	}

	// 3. Нормализуем черновик в payload: пустые строки списков отфильтрованы
	payload := tourbackend.PayloadFromDraft(snapshot.Draft)

	// 4. Создаём тур через синхронизатор (кеш списков устареет на успехе)
	tour, err := uc.sync.CreateTour(ctx, payload)
	if err != nil {
		var rejected *tourbackend.RejectedError
		if errors.As(err, &rejected) {
			uc.logger.Warn("CreateTour: backend rejected session=%s: %s", req.SessionID, rejected.Message)
			uc.draftForm.ApplyServerErrors(ctx, req.SessionID, rejected.Details)
			return nil, err
		}
		uc.logger.Error("CreateTour: create failed for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: create tour: %v", ErrInternal, err)
	}

	// 5. Успех: поток создания начинается заново с пустого черновика
	uc.draftForm.FinishCreate(ctx, req.SessionID)

	uc.logger.Info("CreateTour: tour %s created from session=%s", tour.ID, req.SessionID)
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
		uc.logger.Error("CreateTour: prepare submit failed for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: prepare submit: %v", ErrInternal, err)
	}
}
