package create_draft

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/service/draftform/models"
)

type DraftFormService interface {
	CreateSession(ctx context.Context, userID int64, req *models.CreateSessionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
