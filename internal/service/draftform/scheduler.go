package draftform

import (
	"sync"
	"time"

	"github.com/m04kA/TMS-AdminService/internal/domain"
)

// Scheduler коалесцирует запросы на перевалидацию вкладки: серия правок
// в пределах тихого окна даёт один прогон валидатора вместо прогона на
// каждое нажатие клавиши.
type Scheduler struct {
	mu      sync.Mutex
	quiet   time.Duration
	timers  map[string]*time.Timer
	run     func(sessionID string, tab domain.Tab)
	stopped bool
}

// NewScheduler создает планировщик с тихим окном quiet.
// run вызывается в отдельной горутине по истечении окна.
func NewScheduler(quiet time.Duration, run func(sessionID string, tab domain.Tab)) *Scheduler {
	return &Scheduler{
		quiet:  quiet,
		timers: make(map[string]*time.Timer),
		run:    run,
	}
}

// Schedule откладывает перевалидацию вкладки на конец тихого окна.
// Повторный вызов для той же пары (сессия, вкладка) сдвигает таймер.
func (s *Scheduler) Schedule(sessionID string, tab domain.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	key := sessionID + "/" + string(tab)
	if timer, ok := s.timers[key]; ok {
		timer.Reset(s.quiet)
		return
	}

	s.timers[key] = time.AfterFunc(s.quiet, func() {
		s.mu.Lock()
		delete(s.timers, key)
		stopped := s.stopped
		s.mu.Unlock()

		if !stopped {
			s.run(sessionID, tab)
		}
	})
}

// Stop отменяет все отложенные прогоны. Планировщик после этого не используется.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}
