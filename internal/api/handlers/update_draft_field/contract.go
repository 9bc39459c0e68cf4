package update_draft_field

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/service/draftform/models"
)

type DraftFormService interface {
	ApplyField(ctx context.Context, sessionID string, userID int64, req *models.FieldChangeRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
