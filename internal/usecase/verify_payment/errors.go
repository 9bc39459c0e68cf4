package verify_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("verify_payment: booking not found")

	// ErrConfirmationRequired возвращается, когда оператор не подтвердил
	// сумму и счёт получателя перед верификацией
	ErrConfirmationRequired = errors.New("verify_payment: both confirmations are required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verify_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_payment: internal error")
)
