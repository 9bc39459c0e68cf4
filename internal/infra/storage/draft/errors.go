package draft

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия черновика не найдена
	ErrSessionNotFound = errors.New("draft.repository: session not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("draft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("draft.repository: failed to scan row")

	// ErrEncodePayload возвращается при ошибке сериализации состояния черновика
	ErrEncodePayload = errors.New("draft.repository: failed to encode payload")

	// ErrDecodePayload возвращается при ошибке десериализации состояния черновика
	ErrDecodePayload = errors.New("draft.repository: failed to decode payload")
)
