package update_tour

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// DraftFormService интерфейс сервиса многошаговой формы
type DraftFormService interface {
	PrepareSubmit(ctx context.Context, sessionID string, userID int64) (*domain.DraftSession, error)
	FinishEdit(ctx context.Context, sessionID string, updated *tourbackend.Tour)
	ApplyServerErrors(ctx context.Context, sessionID string, details []tourbackend.ErrorDetail)
}

// TourSynchronizer интерфейс синхронизатора удалённого состояния
type TourSynchronizer interface {
	UpdateTour(ctx context.Context, id string, payload *tourbackend.TourPayload) (*tourbackend.Tour, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
