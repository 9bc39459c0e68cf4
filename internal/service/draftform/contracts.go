package draftform

import (
	"context"
	"time"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// SessionRepository интерфейс репозитория автосохранения сессий черновиков
type SessionRepository interface {
	Create(ctx context.Context, session *domain.DraftSession) (*domain.DraftSession, error)
	GetByID(ctx context.Context, id string) (*domain.DraftSession, error)
	Save(ctx context.Context, session *domain.DraftSession) error
	Delete(ctx context.Context, id string) error
	DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// TourReader интерфейс чтения туров для гидратации черновика в режиме редактирования
type TourReader interface {
	Tour(ctx context.Context, id string) (*tourbackend.Tour, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
