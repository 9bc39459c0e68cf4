package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/pkg/dbmetrics"
	"github.com/m04kA/TMS-AdminService/pkg/psqlbuilder"
)

// Repository репозиторий автосохранения сессий черновиков.
// Черновик вместе с накопленными ошибками и уведомлениями хранится
// единым JSONB-снимком, колонки выделены только под поля выборки.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// payload - JSONB-снимок изменяемой части сессии
type payload struct {
	Draft           *domain.TourDraft `json:"draft"`
	LoadedStartDate string            `json:"loadedStartDate,omitempty"`
	SlugTouched     bool              `json:"slugTouched"`
	FieldErrors     map[string]string `json:"fieldErrors,omitempty"`
	Notices         []domain.Notice   `json:"notices,omitempty"`
}

func encodePayload(session *domain.DraftSession) ([]byte, error) {
	raw, err := json.Marshal(payload{
		Draft:           session.Draft,
		LoadedStartDate: session.LoadedStartDate,
		SlugTouched:     session.SlugTouched,
		FieldErrors:     session.FieldErrors,
		Notices:         session.Notices,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodePayload, err)
	}
	return raw, nil
}

func decodePayload(raw []byte, session *domain.DraftSession) error {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodePayload, err)
	}
	session.Draft = p.Draft
	session.LoadedStartDate = p.LoadedStartDate
	session.SlugTouched = p.SlugTouched
	session.FieldErrors = p.FieldErrors
	session.Notices = p.Notices
	return nil
}

// Create сохраняет новую сессию черновика
func (r *Repository) Create(ctx context.Context, session *domain.DraftSession) (*domain.DraftSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := encodePayload(session)
	if err != nil {
		return nil, fmt.Errorf("Create - encode payload: %w", err)
	}

	query, args, err := psqlbuilder.Insert("draft_sessions").
		Columns(
			"id",
			"user_id",
			"mode",
			"tour_id",
			"active_tab",
			"payload",
		).
		Values(
			session.ID,
			session.UserID,
			string(session.Mode),
			session.TourID,
			string(session.ActiveTab),
			raw,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// GetByID получает сессию черновика по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.DraftSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"mode",
		"tour_id",
		"active_tab",
		"payload",
		"created_at",
		"updated_at",
	).
		From("draft_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var session domain.DraftSession
	var mode, activeTab string
	var raw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.UserID,
		&mode,
		&session.TourID,
		&activeTab,
		&raw,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	session.Mode = domain.DraftMode(mode)
	session.ActiveTab = domain.Tab(activeTab)
	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	if err := decodePayload(raw, &session); err != nil {
		return nil, fmt.Errorf("GetByID - decode payload: %w", err)
	}

	return &session, nil
}

// Save перезаписывает изменяемую часть сессии: снимок черновика и активную вкладку
func (r *Repository) Save(ctx context.Context, session *domain.DraftSession) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := encodePayload(session)
	if err != nil {
		return fmt.Errorf("Save - encode payload: %w", err)
	}

	query, args, err := psqlbuilder.Update("draft_sessions").
		Set("active_tab", string(session.ActiveTab)).
		Set("payload", raw).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": session.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete удаляет сессию черновика
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("draft_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteStale удаляет сессии, не обновлявшиеся дольше указанного срока
func (r *Repository) DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cutoff := time.Now().Add(-olderThan)

	query, args, err := psqlbuilder.Delete("draft_sessions").
		Where(squirrel.Lt{"updated_at": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
