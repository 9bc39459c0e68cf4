package remotestate

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/infra/querycache"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// Service - синхронизатор удалённого состояния: читает через кеш,
// мутации отправляет на бэкенд и приводит кеш в согласованное состояние
type Service struct {
	client BackendClient
	cache  QueryCache
	logger Logger
}

func New(client BackendClient, cache QueryCache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Tours возвращает страницу туров по фильтру, используя кеш списков
func (s *Service) Tours(ctx context.Context, filter tourbackend.ToursFilter) (*tourbackend.ToursPage, error) {
	key := querycache.ListKey(domain.EntityTour, filter.CanonicalQuery())

	value, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.client.ListTours(ctx, filter)
	})
	if err != nil {
		return nil, s.mapTourError(err, "list tours")
	}

	page, ok := value.(*tourbackend.ToursPage)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cache value for key %s", ErrInternal, key)
	}
	return page, nil
}

// Tour возвращает тур по идентификатору, используя кеш деталей
func (s *Service) Tour(ctx context.Context, id string) (*tourbackend.Tour, error) {
	key := querycache.DetailKey(domain.EntityTour, id)

	value, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.client.GetTour(ctx, id)
	})
	if err != nil {
		return nil, s.mapTourError(err, fmt.Sprintf("get tour %s", id))
	}

	tour, ok := value.(*tourbackend.Tour)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cache value for key %s", ErrInternal, key)
	}
	return tour, nil
}

// Bookings возвращает страницу бронирований по фильтру
func (s *Service) Bookings(ctx context.Context, filter tourbackend.BookingsFilter) (*tourbackend.BookingsPage, error) {
	key := querycache.ListKey(domain.EntityBooking, filter.CanonicalQuery())

	value, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.client.ListBookings(ctx, filter)
	})
	if err != nil {
		return nil, s.mapBookingError(err, "list bookings")
	}

	page, ok := value.(*tourbackend.BookingsPage)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cache value for key %s", ErrInternal, key)
	}
	return page, nil
}

// Booking возвращает бронирование по идентификатору
func (s *Service) Booking(ctx context.Context, id string) (*tourbackend.Booking, error) {
	key := querycache.DetailKey(domain.EntityBooking, id)

	value, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.client.GetBooking(ctx, id)
	})
	if err != nil {
		return nil, s.mapBookingError(err, fmt.Sprintf("get booking %s", id))
	}

	booking, ok := value.(*tourbackend.Booking)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cache value for key %s", ErrInternal, key)
	}
	return booking, nil
}

// CreateTour создаёт тур на бэкенде и устаревает кешированные списки туров.
// При ошибке бэкенда кеш не трогается.
func (s *Service) CreateTour(ctx context.Context, payload *tourbackend.TourPayload) (*tourbackend.Tour, error) {
	tour, err := s.client.CreateTour(ctx, payload)
	if err != nil {
		return nil, s.mapTourError(err, "create tour")
	}

	s.cache.Invalidate(InvalidationTargets(domain.EntityTour, MutationCreate)...)
	s.logger.Info("remotestate: tour %s created, tour lists invalidated", tour.ID)

	return tour, nil
}

// UpdateTour обновляет тур на бэкенде, перезаписывает кешированную деталь
// ответом сервера и устаревает списки туров
func (s *Service) UpdateTour(ctx context.Context, id string, payload *tourbackend.TourPayload) (*tourbackend.Tour, error) {
	tour, err := s.client.UpdateTour(ctx, id, payload)
	if err != nil {
		return nil, s.mapTourError(err, fmt.Sprintf("update tour %s", id))
	}

	s.cache.Put(querycache.DetailKey(domain.EntityTour, id), tour)
	s.cache.Invalidate(InvalidationTargets(domain.EntityTour, MutationUpdate)...)
	s.logger.Info("remotestate: tour %s updated, detail refreshed, tour lists invalidated", id)

	return tour, nil
}

// DeleteTour удаляет тур на бэкенде и устаревает все кешированные запросы по турам
func (s *Service) DeleteTour(ctx context.Context, id string) error {
	if err := s.client.DeleteTour(ctx, id); err != nil {
		return s.mapTourError(err, fmt.Sprintf("delete tour %s", id))
	}

	s.cache.Invalidate(InvalidationTargets(domain.EntityTour, MutationDelete)...)
	s.logger.Info("remotestate: tour %s deleted, tour cache invalidated", id)

	return nil
}

// VerifyPayment подтверждает оплату бронирования, перезаписывает кешированную
// деталь бронирования и устаревает списки бронирований
func (s *Service) VerifyPayment(ctx context.Context, bookingID string, payload tourbackend.VerifyPaymentPayload) (*tourbackend.Booking, error) {
	booking, err := s.client.VerifyPayment(ctx, bookingID, payload)
	if err != nil {
		return nil, s.mapBookingError(err, fmt.Sprintf("verify payment for booking %s", bookingID))
	}

	s.cache.Put(querycache.DetailKey(domain.EntityBooking, bookingID), booking)
	s.cache.Invalidate(InvalidationTargets(domain.EntityBooking, MutationUpdate)...)
	s.logger.Info("remotestate: payment verified for booking %s, booking lists invalidated", bookingID)

	return booking, nil
}

// mapTourError переводит ошибки клиента в сентинелы сервиса.
// Ошибки отклонения (RejectedError) пробрасываются без изменений,
// чтобы вызывающий код мог достать детали валидации.
func (s *Service) mapTourError(err error, op string) error {
	switch {
	case errors.Is(err, tourbackend.ErrTourNotFound):
		return fmt.Errorf("%w: %s", ErrTourNotFound, op)
	case errors.Is(err, tourbackend.ErrRejected):
		return err
	default:
		s.logger.Error("remotestate: %s failed: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

func (s *Service) mapBookingError(err error, op string) error {
	switch {
	case errors.Is(err, tourbackend.ErrBookingNotFound):
		return fmt.Errorf("%w: %s", ErrBookingNotFound, op)
	case errors.Is(err, tourbackend.ErrRejected):
		return err
	default:
		s.logger.Error("remotestate: %s failed: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
