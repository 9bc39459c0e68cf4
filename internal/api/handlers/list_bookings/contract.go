package list_bookings

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

type BookingSynchronizer interface {
	Bookings(ctx context.Context, filter tourbackend.BookingsFilter) (*tourbackend.BookingsPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
