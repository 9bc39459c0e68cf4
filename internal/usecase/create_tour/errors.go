package create_tour

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия черновика не найдена
	ErrSessionNotFound = errors.New("create_tour: draft session not found")

	// ErrAccessDenied возвращается при попытке отправить чужой черновик
	ErrAccessDenied = errors.New("create_tour: access denied")

	// ErrNotTerminalTab возвращается при отправке не с последней вкладки
	ErrNotTerminalTab = errors.New("create_tour: submission is only allowed from the last tab")

	// ErrDraftIncomplete возвращается, когда черновик не готов к отправке
	ErrDraftIncomplete = errors.New("create_tour: draft is incomplete")

	// ErrWrongMode возвращается, когда сессия открыта не в режиме создания
	ErrWrongMode = errors.New("create_tour: session is not in create mode")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_tour: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_tour: internal error")
)
