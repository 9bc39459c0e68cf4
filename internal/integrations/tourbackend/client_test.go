package tourbackend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nopLogger{})
}

func TestGetTour(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tours/t-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id":    "t-1",
				"title": "Winter Japan Tour",
				"slug":  "winter-japan-tour",
				"price": 29500000,
			},
		})
	})

	tour, err := client.GetTour(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, "t-1", tour.ID)
	assert.Equal(t, int64(29500000), tour.Price)
}

func TestGetTourNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetTour(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestCreateTourRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"message": "validation failed",
				"details": []map[string]interface{}{
					{"path": []string{"slug"}, "message": "slug already exists"},
				},
			},
		})
	})

	_, err := client.CreateTour(context.Background(), &TourPayload{Title: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "validation failed", rejected.Message)
	require.Len(t, rejected.Details, 1)
	assert.Equal(t, []string{"slug"}, rejected.Details[0].Path)
}

func TestListToursPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "FEATURED", r.URL.Query().Get("category"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []map[string]interface{}{{"id": "t-1", "title": "A"}, {"id": "t-2", "title": "B"}},
			"pagination": map[string]interface{}{
				"page": 2, "limit": 20, "total": 42, "totalPages": 3,
			},
		})
	})

	page, err := client.ListTours(context.Background(), ToursFilter{
		Category: ptr.Ptr("FEATURED"),
		Page:     ptr.Ptr(2),
	})
	require.NoError(t, err)
	assert.Len(t, page.Tours, 2)
	assert.Equal(t, 42, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestVerifyPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments/verify/b-7", r.URL.Path)

		var payload VerifyPaymentPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, int64(5000000), payload.PaidAmount)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id": "b-7", "paymentStatus": "verified", "paidAmount": 5000000,
			},
		})
	})

	booking, err := client.VerifyPayment(context.Background(), "b-7", VerifyPaymentPayload{PaidAmount: 5000000})
	require.NoError(t, err)
	assert.Equal(t, "verified", booking.PaymentStatus)
}

func TestPayloadFromDraft(t *testing.T) {
	draft := domain.NewTourDraft()
	draft.Title = "Winter Japan Tour"
	draft.Slug = "winter-japan-tour"
	draft.Destinations = []string{"Tokyo", "", "  ", "Kyoto"}
	draft.Facilities = []string{"Hotel", ""}
	draft.Included = []string{"Flights", " "}
	draft.Excluded = []string{""}
	draft.Highlights = []domain.Highlight{
		domain.NewPlainHighlight("Snow festival"),
		domain.NewDetailedHighlight("", ""),
		domain.NewDetailedHighlight("Onsen", "Traditional hot spring"),
	}
	draft.Itinerary = []domain.ItineraryDay{
		{Day: 1, Title: "Arrival", Activities: []string{"Check-in", ""}},
		{Day: 0, Title: "", Activities: []string{"skipped: blank title"}},
		{Day: 0, Title: "Free day", Activities: []string{"Explore"}},
	}

	p := PayloadFromDraft(draft)

	assert.Equal(t, []string{"Tokyo", "Kyoto"}, p.Destinations)
	assert.Equal(t, []string{"Hotel"}, p.Facilities)
	assert.Equal(t, []string{"Flights"}, p.Included)
	assert.Empty(t, p.Excluded)

	// Highlight-варианты нормализуются к {title, description?}
	require.Len(t, p.Highlights, 2)
	assert.Equal(t, "Snow festival", p.Highlights[0].Title)
	assert.Nil(t, p.Highlights[0].Description)
	assert.Equal(t, "Onsen", p.Highlights[1].Title)
	require.NotNil(t, p.Highlights[1].Description)

	// День без номера получает следующий свободный номер, пустой день отбрасывается
	require.Len(t, p.Itinerary, 2)
	assert.Equal(t, 1, p.Itinerary[0].Day)
	assert.Equal(t, []string{"Check-in"}, p.Itinerary[0].Activities)
	assert.Equal(t, 2, p.Itinerary[1].Day)
}

func TestDraftFromTour(t *testing.T) {
	tour := &Tour{
		ID:        "t-1",
		Title:     "Bali Escape",
		Slug:      "bali-escape",
		Category:  "FEATURED",
		Badge:     ptr.Ptr("HOT DEAL"),
		StartDate: "2026-10-01",
		EndDate:   "2026-10-07",
		Price:     15000000,
		Destinations: []TourDestination{
			{ID: "d-1", Destination: "Ubud"},
		},
		Highlights: []TourHighlight{
			{ID: "h-1", Title: "Beaches", Description: "White sand"},
		},
	}

	d := DraftFromTour(tour)
	assert.Equal(t, "Bali Escape", d.Title)
	assert.Equal(t, domain.CategoryFeatured, d.Category)
	require.NotNil(t, d.Badge)
	assert.Equal(t, domain.BadgeHotDeal, *d.Badge)
	assert.Equal(t, []string{"Ubud"}, d.Destinations)
	require.Len(t, d.Highlights, 1)
	assert.Equal(t, domain.HighlightDetailed, d.Highlights[0].Kind)

	// Пустые списки заменяются одной пустой строкой ввода
	assert.Equal(t, []string{""}, d.Facilities)
	assert.Equal(t, []string{""}, d.Included)
}
