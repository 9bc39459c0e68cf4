package submit_draft

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/service/draftform/models"
	createTour "github.com/m04kA/TMS-AdminService/internal/usecase/create_tour"
	updateTour "github.com/m04kA/TMS-AdminService/internal/usecase/update_tour"
)

// DraftFormService нужен, чтобы определить режим сессии перед диспетчеризацией
type DraftFormService interface {
	GetSession(ctx context.Context, sessionID string, userID int64) (*models.SessionResponse, error)
}

type CreateTourUseCase interface {
	Execute(ctx context.Context, req *createTour.Request) (*createTour.Response, error)
}

type UpdateTourUseCase interface {
	Execute(ctx context.Context, req *updateTour.Request) (*updateTour.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
