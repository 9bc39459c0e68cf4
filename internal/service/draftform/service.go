package draftform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	draftRepo "github.com/m04kA/TMS-AdminService/internal/infra/storage/draft"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform/models"
)

const saveTimeout = 5 * time.Second

// Service сервис многошаговой формы тура: владеет черновиками,
// решает полноту вкладок и пропускает навигацию и отправку.
// Рабочее состояние держится в памяти, каждая сессия автосохраняется в БД.
type Service struct {
	repo      SessionRepository
	tours     TourReader
	logger    Logger
	time      TimeProvider
	scheduler *Scheduler

	mu       sync.RWMutex
	sessions map[string]*sessionHandle
}

// sessionHandle сериализует изменения одной сессии
type sessionHandle struct {
	mu sync.Mutex
	s  *domain.DraftSession
}

// NewService создает новый экземпляр сервиса формы.
// quiet - тихое окно, в пределах которого серия правок даёт один прогон валидации.
func NewService(
	repo SessionRepository,
	tours TourReader,
	logger Logger,
	timeProvider TimeProvider,
	quiet time.Duration,
) *Service {
	s := &Service{
		repo:     repo,
		tours:    tours,
		logger:   logger,
		time:     timeProvider,
		sessions: make(map[string]*sessionHandle),
	}
	s.scheduler = NewScheduler(quiet, s.revalidate)
	return s
}

// Close останавливает отложенные прогоны валидации
func (s *Service) Close() {
	s.scheduler.Stop()
}

// CreateSession открывает новую сессию черновика.
// В режиме создания черновик пуст, в режиме редактирования он гидратируется
// из тура, загруженного с бэкенда.
func (s *Service) CreateSession(ctx context.Context, userID int64, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	mode := domain.DraftMode(req.Mode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	now := s.time.Now()
	session := &domain.DraftSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mode:      mode,
		ActiveTab: domain.TabBasic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch mode {
	case domain.DraftModeCreate:
		session.Draft = domain.NewTourDraft()

	case domain.DraftModeEdit:
		if req.TourID == nil {
			return nil, fmt.Errorf("%w: edit mode requires tourId", ErrInvalidMode)
		}
		tour, err := s.tours.Tour(ctx, *req.TourID)
		if err != nil {
			s.logger.Warn("CreateSession: tour %s not available for editing: %v", *req.TourID, err)
			return nil, ErrTourNotFound
		}
		session.TourID = req.TourID
		session.Draft = tourbackend.DraftFromTour(tour)
		session.LoadedStartDate = session.Draft.StartDate
	}

	if _, err := s.repo.Create(ctx, session); err != nil {
		s.logger.Error("CreateSession: persist session %s: %v", session.ID, err)
		return nil, fmt.Errorf("%w: persist session: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionHandle{s: session}
	s.mu.Unlock()

	s.logger.Info("CreateSession: session %s opened, mode=%s, user=%d", session.ID, mode, userID)
	return models.FromDomainSession(session), nil
}

// GetSession возвращает текущее состояние сессии
func (s *Service) GetSession(ctx context.Context, sessionID string, userID int64) (*models.SessionResponse, error) {
	handle, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()
	return models.FromDomainSession(handle.s), nil
}

// ApplyField применяет изменение одного поля: мутация с автокоррекциями,
// немедленная проверка изменённого поля и отложенная перевалидация вкладки
// через тихое окно
func (s *Service) ApplyField(ctx context.Context, sessionID string, userID int64, req *models.FieldChangeRequest) (*models.SessionResponse, error) {
	handle, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.s
	if err := applyChange(session, req.Field, req.Value); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.time.Now()

	setFieldError(session, req.Field, validateField(session, req.Field, s.time.Now()))

	if tab, ok := domain.TabOfField(req.Field); ok {
		s.scheduler.Schedule(sessionID, tab)
	}

	return models.FromDomainSession(session), nil
}

// Navigate переключает активную вкладку.
// Назад можно всегда, вперёд - только с заполненной вкладкой без ошибок.
func (s *Service) Navigate(ctx context.Context, sessionID string, userID int64, req *models.NavigateRequest) (*models.SessionResponse, error) {
	handle, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.s

	switch req.Direction {
	case models.DirectionPrev:
		prev, ok := domain.PrevTab(session.ActiveTab)
		if !ok {
			return nil, ErrAtBoundary
		}
		session.ActiveTab = prev

	case models.DirectionNext:
		next, ok := domain.NextTab(session.ActiveTab)
		if !ok {
			return nil, ErrAtBoundary
		}
		// Переход вперёд пропускается только при заполненной вкладке
		// и чистых валидаторах её полей
		validateTab(session, session.ActiveTab, s.time.Now())
		if !domain.TabComplete(session.Draft, session.ActiveTab) || tabHasErrors(session, session.ActiveTab) {
			s.persist(session)
			return nil, ErrTabIncomplete
		}
		session.ActiveTab = next

	default:
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidValue, req.Direction)
	}

	session.UpdatedAt = s.time.Now()
	s.persist(session)

	return models.FromDomainSession(session), nil
}

// PrepareSubmit проверяет, что черновик готов к отправке, и возвращает его копию.
// Отправка разрешена только с последней вкладки и только когда все вкладки
// заполнены одновременно.
func (s *Service) PrepareSubmit(ctx context.Context, sessionID string, userID int64) (*domain.DraftSession, error) {
	handle, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.s
	if !session.ActiveTab.IsTerminal() {
		return nil, ErrNotTerminalTab
	}

	now := s.time.Now()
	for _, tab := range domain.TabOrder {
		validateTab(session, tab, now)
	}

	if !domain.SubmitReady(session.Draft) || len(session.FieldErrors) > 0 {
		s.persist(session)
		return nil, ErrDraftIncomplete
	}

	snapshot := *session
	snapshot.Draft = session.Draft.Clone()
	return &snapshot, nil
}

// FinishCreate сбрасывает сессию после успешного создания тура:
// поток создания начинается заново с пустого черновика
func (s *Service) FinishCreate(ctx context.Context, sessionID string) {
	handle, ok := s.lookup(sessionID)
	if !ok {
		return
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.s
	session.Draft = domain.NewTourDraft()
	session.ActiveTab = domain.TabBasic
	session.SlugTouched = false
	session.FieldErrors = nil
	session.Notices = nil
	session.UpdatedAt = s.time.Now()
	s.persist(session)
}

// FinishEdit перегидратирует черновик ответом сервера после успешного
// обновления: сессия остаётся открытой для дальнейших правок
func (s *Service) FinishEdit(ctx context.Context, sessionID string, updated *tourbackend.Tour) {
	handle, ok := s.lookup(sessionID)
	if !ok {
		return
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.s
	session.Draft = tourbackend.DraftFromTour(updated)
	session.LoadedStartDate = session.Draft.StartDate
	session.SlugTouched = false
	session.FieldErrors = nil
	session.Notices = nil
	session.UpdatedAt = s.time.Now()
	s.persist(session)
}

// ApplyServerErrors раскладывает ошибки, присланные бэкендом при отклонении
// отправки, обратно по полям черновика и возвращает пользователя на первую
// вкладку с ошибкой
func (s *Service) ApplyServerErrors(ctx context.Context, sessionID string, details []tourbackend.ErrorDetail) {
	handle, ok := s.lookup(sessionID)
	if !ok {
		return
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.s
	var firstTab domain.Tab
	for _, detail := range details {
		if len(detail.Path) == 0 {
			continue
		}
		field := detail.Path[0]
		tab, ok := domain.TabOfField(field)
		if !ok {
			continue
		}
		setFieldError(session, field, detail.Message)
		if firstTab == "" || tab.Index() < firstTab.Index() {
			firstTab = tab
		}
	}

	if firstTab != "" {
		session.ActiveTab = firstTab
	}
	session.UpdatedAt = s.time.Now()
	s.persist(session)
}

// DeleteSession закрывает сессию и удаляет её автосохранение
func (s *Service) DeleteSession(ctx context.Context, sessionID string, userID int64) error {
	if _, err := s.load(ctx, sessionID, userID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, sessionID); err != nil && !errors.Is(err, draftRepo.ErrSessionNotFound) {
		s.logger.Error("DeleteSession: delete session %s: %v", sessionID, err)
		return fmt.Errorf("%w: delete session: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSession: session %s closed", sessionID)
	return nil
}

// PurgeStale удаляет из БД сессии, не обновлявшиеся дольше maxAge
func (s *Service) PurgeStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	purged, err := s.repo.DeleteStale(ctx, maxAge)
	if err != nil {
		return 0, fmt.Errorf("%w: purge stale sessions: %v", ErrInternal, err)
	}
	if purged > 0 {
		s.logger.Info("PurgeStale: removed %d stale draft sessions", purged)
	}
	return purged, nil
}

// load возвращает handle сессии, поднимая её из БД при рестарте сервиса
func (s *Service) load(ctx context.Context, sessionID string, userID int64) (*sessionHandle, error) {
	if handle, ok := s.lookup(sessionID); ok {
		if handle.s.UserID != userID {
			return nil, ErrAccessDenied
		}
		return handle, nil
	}

	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("load: fetch session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: fetch session: %v", ErrInternal, err)
	}
	if session.UserID != userID {
		return nil, ErrAccessDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Параллельный запрос мог поднять сессию первым
	if handle, ok := s.sessions[sessionID]; ok {
		return handle, nil
	}
	handle := &sessionHandle{s: session}
	s.sessions[sessionID] = handle
	return handle, nil
}

func (s *Service) lookup(sessionID string) (*sessionHandle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	handle, ok := s.sessions[sessionID]
	return handle, ok
}

// persist автосохраняет сессию, не проваливая пользовательскую операцию:
// источник истины - память, БД переживает рестарт
func (s *Service) persist(session *domain.DraftSession) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.repo.Save(ctx, session); err != nil {
		s.logger.Warn("persist: autosave session %s failed: %v", session.ID, err)
	}
}

// revalidate - отложенный прогон валидации вкладки по истечении тихого окна
func (s *Service) revalidate(sessionID string, tab domain.Tab) {
	handle, ok := s.lookup(sessionID)
	if !ok {
		return
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()

	validateTab(handle.s, tab, s.time.Now())
	s.persist(handle.s)
}
