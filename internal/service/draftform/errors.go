package draftform

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия черновика не найдена
	ErrSessionNotFound = errors.New("draft session not found")

	// ErrAccessDenied возвращается при попытке работать с чужой сессией
	ErrAccessDenied = errors.New("access denied")

	// ErrTourNotFound возвращается, когда тур для режима редактирования не найден
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidMode возвращается при неизвестном режиме сессии
	ErrInvalidMode = errors.New("invalid draft mode")

	// ErrUnknownField возвращается при изменении поля, которого нет в черновике
	ErrUnknownField = errors.New("unknown draft field")

	// ErrInvalidValue возвращается, когда значение поля не декодируется в его тип
	ErrInvalidValue = errors.New("invalid field value")

	// ErrTabIncomplete возвращается, когда переход вперёд заблокирован незаполненной вкладкой
	ErrTabIncomplete = errors.New("active tab is incomplete")

	// ErrAtBoundary возвращается при попытке уйти за первую или последнюю вкладку
	ErrAtBoundary = errors.New("no tab in that direction")

	// ErrDraftIncomplete возвращается при отправке черновика с незаполненными вкладками
	ErrDraftIncomplete = errors.New("draft is incomplete")

	// ErrNotTerminalTab возвращается при отправке не с последней вкладки
	ErrNotTerminalTab = errors.New("submission is only allowed from the last tab")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("draftform: internal error")
)
