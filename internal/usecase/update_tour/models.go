package update_tour

import "github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"

// Request запрос на сохранение изменений тура из черновика
type Request struct {
	SessionID string
	UserID    int64
}

// Response обновлённый тур
type Response struct {
	Tour *tourbackend.Tour
}
