package create_tour

import "github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"

// Request запрос на создание тура из черновика
type Request struct {
	SessionID string
	UserID    int64
}

// Response созданный тур
type Response struct {
	Tour *tourbackend.Tour
}
