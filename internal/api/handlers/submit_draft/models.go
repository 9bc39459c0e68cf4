package submit_draft

import "github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"

// SubmitResponse успешный результат отправки черновика
type SubmitResponse struct {
	Tour *tourbackend.Tour `json:"tour"`
	Mode string            `json:"mode"`
}

// FieldErrorView ошибка валидации одного поля от бэкенда
type FieldErrorView struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RejectionResponse ответ при отклонении отправки бэкендом.
// Ошибки уже разложены по полям сессии, клиент может перечитать черновик.
type RejectionResponse struct {
	Error   string           `json:"error"`
	Details []FieldErrorView `json:"details,omitempty"`
}

// FromErrorDetails конвертирует детали бэкенда в плоский список поле-сообщение
func FromErrorDetails(details []tourbackend.ErrorDetail) []FieldErrorView {
	views := make([]FieldErrorView, 0, len(details))
	for _, d := range details {
		field := ""
		if len(d.Path) > 0 {
			field = d.Path[0]
		}
		views = append(views, FieldErrorView{Field: field, Message: d.Message})
	}
	return views
}
