package tourbackend

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден на бэкенде
	ErrTourNotFound = errors.New("tourbackend client: tour not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено на бэкенде
	ErrBookingNotFound = errors.New("tourbackend client: booking not found")

	// ErrRejected возвращается, когда бэкенд ответил envelope с success=false
	// Конкретное сообщение и детали доступны через RejectedError
	ErrRejected = errors.New("tourbackend client: request rejected by backend")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сбой запроса)
	ErrInternal = errors.New("tourbackend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("tourbackend client: invalid response")
)

// RejectedError ошибка отклонённого бэкендом запроса
// Несёт пользовательское сообщение и, опционально, список ошибок по полям
type RejectedError struct {
	Message string
	Details []ErrorDetail
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return "tourbackend client: rejected: " + e.Message
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrRejected)
func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
