package remotestate

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/infra/querycache"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// BackendClient - клиент REST-бэкенда туров
type BackendClient interface {
	ListTours(ctx context.Context, filter tourbackend.ToursFilter) (*tourbackend.ToursPage, error)
	GetTour(ctx context.Context, id string) (*tourbackend.Tour, error)
	CreateTour(ctx context.Context, payload *tourbackend.TourPayload) (*tourbackend.Tour, error)
	UpdateTour(ctx context.Context, id string, payload *tourbackend.TourPayload) (*tourbackend.Tour, error)
	DeleteTour(ctx context.Context, id string) error
	ListBookings(ctx context.Context, filter tourbackend.BookingsFilter) (*tourbackend.BookingsPage, error)
	GetBooking(ctx context.Context, id string) (*tourbackend.Booking, error)
	VerifyPayment(ctx context.Context, bookingID string, payload tourbackend.VerifyPaymentPayload) (*tourbackend.Booking, error)
}

// QueryCache - кеш запросов с дедупликацией и инвалидацией
type QueryCache interface {
	Read(ctx context.Context, key querycache.Key, fetch querycache.FetchFunc) (interface{}, error)
	Put(key querycache.Key, value interface{})
	Invalidate(prefixes ...string) int
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
