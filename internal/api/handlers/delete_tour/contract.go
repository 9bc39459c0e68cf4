package delete_tour

import "context"

type TourSynchronizer interface {
	DeleteTour(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
