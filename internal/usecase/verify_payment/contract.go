package verify_payment

import (
	"context"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// PaymentSynchronizer интерфейс синхронизатора удалённого состояния
type PaymentSynchronizer interface {
	VerifyPayment(ctx context.Context, bookingID string, payload tourbackend.VerifyPaymentPayload) (*tourbackend.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
