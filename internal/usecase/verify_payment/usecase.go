package verify_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-AdminService/internal/service/remotestate"
)

// UseCase use case верификации оплаты бронирования
type UseCase struct {
	sync   PaymentSynchronizer
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sync PaymentSynchronizer, logger Logger) *UseCase {
	return &UseCase{
		sync:   sync,
		logger: logger,
	}
}

// Execute выполняет use case верификации оплаты.
// Без обоих подтверждений оператора запрос на бэкенд не уходит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VerifyPayment: booking=%s, user=%d, amount=%d", req.BookingID, req.UserID, req.PaidAmount)

	// 1. Валидация входных данных и подтверждений оператора
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("VerifyPayment: validation failed for booking=%s: %v", req.BookingID, err)
		return nil, err
	}

	// 2. Верифицируем оплату через синхронизатор: деталь бронирования
	// в кеше перезапишется ответом, списки устареют
	booking, err := uc.sync.VerifyPayment(ctx, req.BookingID, req.ToPayload())
	if err != nil {
		if errors.Is(err, remotestate.ErrBookingNotFound) {
			uc.logger.Warn("VerifyPayment: booking=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("VerifyPayment: failed for booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: verify payment: %v", ErrInternal, err)
	}

	uc.logger.Info("VerifyPayment: booking=%s verified, status=%s", booking.ID, booking.PaymentStatus)
	return &Response{Booking: booking}, nil
}
