package get_tour

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

type TourSynchronizer interface {
	Tour(ctx context.Context, id string) (*tourbackend.Tour, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
