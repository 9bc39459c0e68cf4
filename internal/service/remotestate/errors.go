package remotestate

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден на бэкенде
	ErrTourNotFound = errors.New("remotestate: tour not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено на бэкенде
	ErrBookingNotFound = errors.New("remotestate: booking not found")

	// ErrInternal возвращается при внутренних ошибках синхронизатора
	ErrInternal = errors.New("remotestate: internal error")
)
