package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabSequence(t *testing.T) {
	// Переходы вперёд идут строго по порядку, без пропусков
	next, ok := NextTab(TabBasic)
	require.True(t, ok)
	assert.Equal(t, TabPricing, next)

	_, ok = NextTab(TabIncluded)
	assert.False(t, ok)

	prev, ok := PrevTab(TabPricing)
	require.True(t, ok)
	assert.Equal(t, TabBasic, prev)

	_, ok = PrevTab(TabBasic)
	assert.False(t, ok)

	assert.True(t, TabIncluded.IsTerminal())
	assert.False(t, TabItinerary.IsTerminal())
}

func TestTabOfField(t *testing.T) {
	tab, ok := TabOfField(FieldDiscount)
	require.True(t, ok)
	assert.Equal(t, TabPricing, tab)

	tab, ok = TabOfField(FieldFacilities)
	require.True(t, ok)
	assert.Equal(t, TabDestinations, tab)

	_, ok = TabOfField("unknown")
	assert.False(t, ok)
}

func TestTabFieldsCoverAllTabs(t *testing.T) {
	for _, tab := range TabOrder {
		assert.NotEmpty(t, TabFields(tab), "у вкладки %s должны быть поля", tab)
	}
}
