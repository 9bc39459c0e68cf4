package verify_payment

import (
	verifyPayment "github.com/m04kA/TMS-AdminService/internal/usecase/verify_payment"
)

// VerifyPaymentRequest HTTP request model
type VerifyPaymentRequest struct {
	PaidAmount       int64   `json:"paidAmount"`
	PaymentMethod    *string `json:"paymentMethod,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	AmountConfirmed  bool    `json:"amountConfirmed"`
	AccountConfirmed bool    `json:"accountConfirmed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *VerifyPaymentRequest) ToUseCaseRequest(bookingID string, userID int64) *verifyPayment.Request {
	return &verifyPayment.Request{
		BookingID:        bookingID,
		UserID:           userID,
		PaidAmount:       r.PaidAmount,
		PaymentMethod:    r.PaymentMethod,
		Notes:            r.Notes,
		AmountConfirmed:  r.AmountConfirmed,
		AccountConfirmed: r.AccountConfirmed,
	}
}
