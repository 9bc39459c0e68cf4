package verify_payment

import "github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"

// Request запрос на верификацию оплаты бронирования.
// AmountConfirmed и AccountConfirmed - подтверждения оператора, что сумма
// совпадает с выпиской и деньги пришли на правильный счёт. Это клиентский
// шлюз: бэкенд их не проверяет, но без обоих флагов запрос не уходит.
type Request struct {
	BookingID        string
	UserID           int64
	PaidAmount       int64
	PaymentMethod    *string
	Notes            *string
	AmountConfirmed  bool
	AccountConfirmed bool
}

// Response бронирование после верификации оплаты
type Response struct {
	Booking *tourbackend.Booking
}

// ToPayload конвертирует request в payload бэкенда
func (r *Request) ToPayload() tourbackend.VerifyPaymentPayload {
	return tourbackend.VerifyPaymentPayload{
		PaidAmount:    r.PaidAmount,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}
