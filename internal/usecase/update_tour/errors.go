package update_tour

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия черновика не найдена
	ErrSessionNotFound = errors.New("update_tour: draft session not found")

	// ErrAccessDenied возвращается при попытке отправить чужой черновик
	ErrAccessDenied = errors.New("update_tour: access denied")

	// ErrNotTerminalTab возвращается при отправке не с последней вкладки
	ErrNotTerminalTab = errors.New("update_tour: submission is only allowed from the last tab")

	// ErrDraftIncomplete возвращается, когда черновик не готов к отправке
	ErrDraftIncomplete = errors.New("update_tour: draft is incomplete")

	// ErrWrongMode возвращается, когда сессия открыта не в режиме редактирования
	ErrWrongMode = errors.New("update_tour: session is not in edit mode")

	// ErrTourNotFound возвращается, когда редактируемый тур уже удалён на бэкенде
	ErrTourNotFound = errors.New("update_tour: tour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_tour: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_tour: internal error")
)
