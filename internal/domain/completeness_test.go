package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeDraft() *TourDraft {
	d := NewTourDraft()
	d.Title = "Winter Wonderland Tour"
	d.Slug = "winter-wonderland-tour"
	d.Image = "https://cdn.example.com/tours/winter.jpg"
	d.StartDate = "2027-01-10"
	d.EndDate = "2027-01-17"
	d.Duration = "7 дней"
	d.Price = 150000
	d.Destinations = []string{"Мурманск"}
	d.Facilities = []string{"Трансфер"}
	d.Included = []string{"Завтраки"}
	d.Highlights = []Highlight{NewPlainHighlight("Северное сияние")}
	return d
}

func TestPricingTabCompleteness(t *testing.T) {
	tests := []struct {
		name          string
		price         int64
		originalPrice *int64
		discount      *int64
		complete      bool
	}{
		{name: "цена с originalPrice и скидкой в пределах", price: 100, originalPrice: int64Ptr(200), discount: int64Ptr(150), complete: true},
		{name: "нулевая цена", price: 0, complete: false},
		{name: "только цена", price: 100, complete: true},
		{name: "скидка больше цены без originalPrice", price: 100, discount: int64Ptr(150), complete: false},
		{name: "скидка больше originalPrice", price: 100, originalPrice: int64Ptr(120), discount: int64Ptr(150), complete: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTourDraft()
			d.Price = tt.price
			d.OriginalPrice = tt.originalPrice
			d.Discount = tt.discount
			assert.Equal(t, tt.complete, TabComplete(d, TabPricing))
		})
	}
}

func TestBasicTabCompleteness(t *testing.T) {
	d := completeDraft()
	assert.True(t, TabComplete(d, TabBasic))

	d.EndDate = "2027-01-05" // раньше даты начала
	assert.False(t, TabComplete(d, TabBasic))

	d = completeDraft()
	d.Slug = "Invalid Slug!"
	assert.False(t, TabComplete(d, TabBasic))

	d = completeDraft()
	d.Duration = "  "
	assert.False(t, TabComplete(d, TabBasic))
}

func TestDestinationsTabNeedsFacilityToo(t *testing.T) {
	d := completeDraft()
	assert.True(t, TabComplete(d, TabDestinations))

	d.Facilities = []string{"", "  "}
	assert.False(t, TabComplete(d, TabDestinations))
}

func TestItineraryTabAlwaysPassable(t *testing.T) {
	d := NewTourDraft()
	assert.True(t, TabComplete(d, TabItinerary))

	// Но заполненный наполовину день блокирует отправку
	d = completeDraft()
	d.Itinerary = []ItineraryDay{{Day: 1, Title: "Прибытие", Activities: []string{""}}}
	assert.True(t, TabComplete(d, TabItinerary))
	assert.False(t, ItineraryValid(d))
	assert.False(t, SubmitReady(d))
}

func TestSubmitReady(t *testing.T) {
	d := completeDraft()
	assert.True(t, SubmitReady(d))

	d.Included = []string{""}
	assert.False(t, SubmitReady(d))

	tab, ok := FirstIncompleteTab(d)
	assert.True(t, ok)
	assert.Equal(t, TabIncluded, tab)
}

func int64Ptr(v int64) *int64 { return &v }
