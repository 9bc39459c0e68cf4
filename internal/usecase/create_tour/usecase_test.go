package create_tour

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	"github.com/m04kA/TMS-AdminService/internal/service/draftform"
)

type fakeDraftForm struct {
	snapshot      *domain.DraftSession
	prepareErr    error
	finishedWith  string
	appliedErrors []tourbackend.ErrorDetail
}

func (f *fakeDraftForm) PrepareSubmit(_ context.Context, _ string, _ int64) (*domain.DraftSession, error) {
	if f.prepareErr != nil {
		return nil, f.prepareErr
	}
	return f.snapshot, nil
}

func (f *fakeDraftForm) FinishCreate(_ context.Context, sessionID string) {
	f.finishedWith = sessionID
}

func (f *fakeDraftForm) ApplyServerErrors(_ context.Context, _ string, details []tourbackend.ErrorDetail) {
	f.appliedErrors = details
}

type fakeSync struct {
	calls int
	tour  *tourbackend.Tour
	err   error
}

func (f *fakeSync) CreateTour(_ context.Context, _ *tourbackend.TourPayload) (*tourbackend.Tour, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tour, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func readySnapshot() *domain.DraftSession {
	d := domain.NewTourDraft()
	d.Title = "Winter Wonderland Tour"
	d.Slug = "winter-wonderland-tour"
	d.Image = "https://cdn.example.com/winter.jpg"
	d.StartDate = "2027-01-10"
	d.EndDate = "2027-01-17"
	d.Duration = "7 дней"
	d.Price = 150000
	d.Destinations = []string{"Мурманск"}
	d.Facilities = []string{"Трансфер"}
	d.Included = []string{"Завтраки"}
	d.Highlights = []domain.Highlight{domain.NewPlainHighlight("Северное сияние")}
	return &domain.DraftSession{
		ID:     "session-1",
		UserID: 1,
		Mode:   domain.DraftModeCreate,
		Draft:  d,
	}
}

func TestExecuteSuccess(t *testing.T) {
	form := &fakeDraftForm{snapshot: readySnapshot()}
	sync := &fakeSync{tour: &tourbackend.Tour{ID: "77", Title: "Winter Wonderland Tour"}}
	uc := NewUseCase(form, sync, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "session-1", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, "77", resp.Tour.ID)
	assert.Equal(t, 1, sync.calls)
	assert.Equal(t, "session-1", form.finishedWith, "успешное создание сбрасывает черновик")
}

func TestExecuteIncompleteDraftNoNetworkCall(t *testing.T) {
	form := &fakeDraftForm{prepareErr: draftform.ErrDraftIncomplete}
	sync := &fakeSync{}
	uc := NewUseCase(form, sync, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "session-1", UserID: 1})

	assert.ErrorIs(t, err, ErrDraftIncomplete)
	assert.Equal(t, 0, sync.calls, "незавершённый черновик не должен уходить на бэкенд")
}

func TestExecuteWrongMode(t *testing.T) {
	snapshot := readySnapshot()
	snapshot.Mode = domain.DraftModeEdit
	form := &fakeDraftForm{snapshot: snapshot}
	sync := &fakeSync{}
	uc := NewUseCase(form, sync, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "session-1", UserID: 1})

	assert.ErrorIs(t, err, ErrWrongMode)
	assert.Equal(t, 0, sync.calls)
}

func TestExecuteBackendRejectionMapsFieldErrors(t *testing.T) {
	form := &fakeDraftForm{snapshot: readySnapshot()}
	details := []tourbackend.ErrorDetail{{Path: []string{domain.FieldSlug}, Message: "Slug уже занят"}}
	sync := &fakeSync{err: &tourbackend.RejectedError{Message: "Validation failed", Details: details}}
	uc := NewUseCase(form, sync, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "session-1", UserID: 1})

	var rejected *tourbackend.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, details, form.appliedErrors, "ошибки сервера разложены по полям")
	assert.Empty(t, form.finishedWith, "отклонённая отправка не сбрасывает черновик")
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeDraftForm{}, &fakeSync{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "", UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "session-1", UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
