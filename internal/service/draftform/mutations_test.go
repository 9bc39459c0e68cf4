package draftform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/pkg/ptr"
)

func newSession() *domain.DraftSession {
	return &domain.DraftSession{
		ID:     "test-session",
		UserID: 1,
		Mode:   domain.DraftModeCreate,
		Draft:  domain.NewTourDraft(),
	}
}

func rawJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestTitleDerivesSlug(t *testing.T) {
	session := newSession()

	require.NoError(t, applyChange(session, domain.FieldTitle, rawJSON(t, "Winter Wonderland Tour!")))
	assert.Equal(t, "winter-wonderland-tour", session.Draft.Slug)
}

func TestManualSlugStopsDerivation(t *testing.T) {
	session := newSession()

	require.NoError(t, applyChange(session, domain.FieldSlug, rawJSON(t, "my-own-slug")))
	assert.True(t, session.SlugTouched)

	require.NoError(t, applyChange(session, domain.FieldTitle, rawJSON(t, "Совсем другой тур")))
	assert.Equal(t, "my-own-slug", session.Draft.Slug)
}

func TestPriceBackfillsOriginalPrice(t *testing.T) {
	session := newSession()
	session.Draft.Price = 1000

	require.NoError(t, applyChange(session, domain.FieldPrice, rawJSON(t, 1500)))

	assert.Equal(t, int64(1500), session.Draft.Price)
	require.NotNil(t, session.Draft.OriginalPrice)
	assert.Equal(t, int64(1500), *session.Draft.OriginalPrice)
}

func TestPriceKeepsExistingOriginalPrice(t *testing.T) {
	session := newSession()
	session.Draft.OriginalPrice = ptr.Ptr(int64(2000))

	require.NoError(t, applyChange(session, domain.FieldPrice, rawJSON(t, 1500)))

	require.NotNil(t, session.Draft.OriginalPrice)
	assert.Equal(t, int64(2000), *session.Draft.OriginalPrice)
}

func TestClearedOriginalPriceResetsToPrice(t *testing.T) {
	session := newSession()
	session.Draft.Price = 1200
	session.Draft.OriginalPrice = ptr.Ptr(int64(2000))

	require.NoError(t, applyChange(session, domain.FieldOriginalPrice, rawJSON(t, nil)))

	require.NotNil(t, session.Draft.OriginalPrice)
	assert.Equal(t, int64(1200), *session.Draft.OriginalPrice)
}

func TestLoweringOriginalPriceClampsDiscount(t *testing.T) {
	session := newSession()
	session.Draft.OriginalPrice = ptr.Ptr(int64(1000))
	session.Draft.Discount = ptr.Ptr(int64(900))

	require.NoError(t, applyChange(session, domain.FieldOriginalPrice, rawJSON(t, 500)))

	require.NotNil(t, session.Draft.Discount)
	assert.Equal(t, int64(500), *session.Draft.Discount)
	require.Len(t, session.Notices, 1)
	assert.Equal(t, domain.NoticeWarning, session.Notices[0].Level)
	assert.Equal(t, domain.FieldDiscount, session.Notices[0].Field)
}

func TestDiscountClampedToBound(t *testing.T) {
	session := newSession()
	session.Draft.Price = 1000
	session.Draft.OriginalPrice = ptr.Ptr(int64(1500))

	require.NoError(t, applyChange(session, domain.FieldDiscount, rawJSON(t, 2000)))

	require.NotNil(t, session.Draft.Discount)
	assert.Equal(t, int64(1500), *session.Draft.Discount)
	require.Len(t, session.Notices, 1)
	assert.Equal(t, domain.NoticeWarning, session.Notices[0].Level)
}

func TestLoweringTotalSeatsClampsSeatsTaken(t *testing.T) {
	session := newSession()
	session.Draft.TotalSeats = ptr.Ptr(int64(10))
	session.Draft.SeatsTaken = ptr.Ptr(int64(8))

	require.NoError(t, applyChange(session, domain.FieldTotalSeats, rawJSON(t, 5)))

	require.NotNil(t, session.Draft.SeatsTaken)
	assert.Equal(t, int64(5), *session.Draft.SeatsTaken)
	require.Len(t, session.Notices, 1)
	assert.Equal(t, domain.NoticeWarning, session.Notices[0].Level)
}

func TestRaisingSeatsTakenAboveTotalClampsBack(t *testing.T) {
	session := newSession()
	session.Draft.TotalSeats = ptr.Ptr(int64(10))

	require.NoError(t, applyChange(session, domain.FieldSeatsTaken, rawJSON(t, 15)))

	require.NotNil(t, session.Draft.SeatsTaken)
	assert.Equal(t, int64(10), *session.Draft.SeatsTaken)
	require.Len(t, session.Notices, 1)
	assert.Equal(t, domain.NoticeError, session.Notices[0].Level)
}

func TestNoticesReplacedOnNextChange(t *testing.T) {
	session := newSession()
	session.Draft.TotalSeats = ptr.Ptr(int64(10))

	require.NoError(t, applyChange(session, domain.FieldSeatsTaken, rawJSON(t, 15)))
	require.Len(t, session.Notices, 1)

	require.NoError(t, applyChange(session, domain.FieldTitle, rawJSON(t, "Новый тур")))
	assert.Empty(t, session.Notices)
}

func TestUnknownFieldRejected(t *testing.T) {
	session := newSession()

	err := applyChange(session, "unknownField", rawJSON(t, "value"))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestInvalidValueRejected(t *testing.T) {
	session := newSession()

	err := applyChange(session, domain.FieldPrice, rawJSON(t, "not a number"))
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = applyChange(session, domain.FieldPrice, rawJSON(t, -100))
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = applyChange(session, domain.FieldCategory, rawJSON(t, "UNKNOWN"))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestHighlightsDecodeBothShapes(t *testing.T) {
	session := newSession()

	raw := rawJSON(t, []map[string]string{
		{"text": "Северное сияние"},
		{"title": "Сафари", "description": "На снегоходах"},
	})
	require.NoError(t, applyChange(session, domain.FieldHighlights, raw))

	require.Len(t, session.Draft.Highlights, 2)
	assert.Equal(t, domain.HighlightPlain, session.Draft.Highlights[0].Kind)
	assert.Equal(t, domain.HighlightDetailed, session.Draft.Highlights[1].Kind)
}

func TestItineraryAssignsMissingDayNumbers(t *testing.T) {
	session := newSession()

	raw := rawJSON(t, []map[string]interface{}{
		{"day": 1, "title": "Прибытие", "activities": []string{"Трансфер"}},
		{"title": "Экскурсия", "activities": []string{"Музей"}},
	})
	require.NoError(t, applyChange(session, domain.FieldItinerary, raw))

	require.Len(t, session.Draft.Itinerary, 2)
	assert.Equal(t, 1, session.Draft.Itinerary[0].Day)
	assert.Equal(t, 2, session.Draft.Itinerary[1].Day)
}
