package get_booking

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

type BookingSynchronizer interface {
	Booking(ctx context.Context, id string) (*tourbackend.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
