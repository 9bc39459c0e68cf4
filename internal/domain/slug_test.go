package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"обычный заголовок", "Winter Wonderland Tour!", "winter-wonderland-tour"},
		{"лишние пробелы", "  Bali   Beach  Escape  ", "bali-beach-escape"},
		{"спецсимволы", "Tokyo & Kyoto: 7 Days", "tokyo-kyoto-7-days"},
		{"повторные дефисы", "sale -- last call", "sale-last-call"},
		{"дефисы по краям", "-promo-", "promo"},
		{"пустая строка", "", ""},
		{"только спецсимволы", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Winter Wonderland Tour!",
		"Tokyo & Kyoto: 7 Days",
		"  spaced   out  ",
		"уже-готовый-slug",
	}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "Slugify должен быть идемпотентен для %q", title)
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("winter-japan-tour"))
	assert.True(t, IsValidSlug("tour2025"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Winter-Tour"))
	assert.False(t, IsValidSlug("tour japan"))
	assert.False(t, IsValidSlug("tour_japan"))
}

func TestFilterBlank(t *testing.T) {
	got := FilterBlank([]string{"Бали", "", "  ", " Убуд "})
	assert.Equal(t, []string{"Бали", "Убуд"}, got)
}
