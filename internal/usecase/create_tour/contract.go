package create_tour

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// DraftFormService интерфейс сервиса многошаговой формы
type DraftFormService interface {
	PrepareSubmit(ctx context.Context, sessionID string, userID int64) (*domain.DraftSession, error)
	FinishCreate(ctx context.Context, sessionID string)
	ApplyServerErrors(ctx context.Context, sessionID string, details []tourbackend.ErrorDetail)
}

// TourSynchronizer интерфейс синхронизатора удалённого состояния
type TourSynchronizer interface {
	CreateTour(ctx context.Context, payload *tourbackend.TourPayload) (*tourbackend.Tour, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
