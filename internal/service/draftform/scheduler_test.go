package draftform

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TMS-AdminService/internal/domain"
)

type runRecorder struct {
	mu   sync.Mutex
	runs []string
}

func (r *runRecorder) run(sessionID string, tab domain.Tab) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, sessionID+"/"+string(tab))
}

func (r *runRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func TestSchedulerCoalescesBurst(t *testing.T) {
	rec := &runRecorder{}
	s := NewScheduler(20*time.Millisecond, rec.run)
	defer s.Stop()

	// Серия правок в пределах тихого окна
	for i := 0; i < 10; i++ {
		s.Schedule("session-1", domain.TabBasic)
		time.Sleep(time.Millisecond)
	}

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestSchedulerKeepsSessionsSeparate(t *testing.T) {
	rec := &runRecorder{}
	s := NewScheduler(10*time.Millisecond, rec.run)
	defer s.Stop()

	s.Schedule("session-1", domain.TabBasic)
	s.Schedule("session-2", domain.TabBasic)
	s.Schedule("session-1", domain.TabPricing)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 3, rec.count())
}

func TestSchedulerStopCancelsPending(t *testing.T) {
	rec := &runRecorder{}
	s := NewScheduler(30*time.Millisecond, rec.run)

	s.Schedule("session-1", domain.TabBasic)
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count())

	// После остановки планирование игнорируется
	s.Schedule("session-1", domain.TabBasic)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}
