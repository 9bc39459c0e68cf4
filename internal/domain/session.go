package domain

import "time"

// DraftMode режим работы сессии черновика
type DraftMode string

const (
	// DraftModeCreate - создание нового тура с нуля
	DraftModeCreate DraftMode = "create"
	// DraftModeEdit - редактирование существующего тура
	DraftModeEdit DraftMode = "edit"
)

// IsValid проверяет корректность режима
func (m DraftMode) IsValid() bool {
	return m == DraftModeCreate || m == DraftModeEdit
}

// NoticeLevel уровень уведомления, возникшего при автокоррекции полей
type NoticeLevel string

const (
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice уведомление об автокоррекции значения поля
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
}

// DraftSession сессия редактирования черновика тура.
// Хранит сам черновик, позицию во вкладках и накопленные ошибки валидации.
type DraftSession struct {
	ID     string    `json:"id"`
	UserID int64     `json:"userId"`
	Mode   DraftMode `json:"mode"`
	// TourID заполнен только в режиме редактирования
	TourID    *string    `json:"tourId,omitempty"`
	ActiveTab Tab        `json:"activeTab"`
	Draft     *TourDraft `json:"draft"`
	// LoadedStartDate - дата начала тура на момент загрузки черновика.
	// В режиме редактирования неизменённая дата не проверяется на "не в прошлом".
	LoadedStartDate string `json:"loadedStartDate,omitempty"`
	// SlugTouched выставляется после первого ручного изменения slug:
	// с этого момента slug перестаёт выводиться из заголовка
	SlugTouched bool              `json:"slugTouched"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Notices     []Notice          `json:"notices,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
