package verify_payment

import "fmt"

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.PaidAmount <= 0 {
		return fmt.Errorf("%w: paidAmount must be positive", ErrInvalidInput)
	}
	if !req.AmountConfirmed || !req.AccountConfirmed {
		return ErrConfirmationRequired
	}
	return nil
}
