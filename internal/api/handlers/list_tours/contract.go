package list_tours

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

type TourSynchronizer interface {
	Tours(ctx context.Context, filter tourbackend.ToursFilter) (*tourbackend.ToursPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
