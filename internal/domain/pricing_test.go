package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TMS-AdminService/pkg/ptr"
)

func TestDiscountPercentage(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		discount int64
		want     int
	}{
		{"обычная скидка", 1000, 250, 25},
		{"округление вверх", 1000, 125, 13},
		{"округление вниз", 1000, 124, 12},
		{"нулевая база", 0, 500, 0},
		{"отрицательная база", -100, 50, 0},
		{"нулевая скидка", 1000, 0, 0},
		{"отрицательная скидка", 1000, -50, 0},
		{"скидка равна базе", 34000000, 34000000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercentage(tt.base, tt.discount))
		})
	}
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		discount int64
		want     int64
	}{
		{"скидка меньше базы", 29500000, 4500000, 25000000},
		{"скидка равна базе", 1000, 1000, 0},
		{"скидка больше базы", 1000, 1500, 0},
		{"нулевая скидка", 1000, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPrice(tt.base, tt.discount)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestAvailableSeats(t *testing.T) {
	t.Run("оба значения заданы", func(t *testing.T) {
		got := AvailableSeats(ptr.Ptr(int64(20)), ptr.Ptr(int64(12)))
		assert.Equal(t, int64(8), *got)
	})

	t.Run("total не задан", func(t *testing.T) {
		assert.Nil(t, AvailableSeats(nil, ptr.Ptr(int64(5))))
	})

	t.Run("taken не задан", func(t *testing.T) {
		got := AvailableSeats(ptr.Ptr(int64(20)), nil)
		assert.Equal(t, int64(20), *got)
	})

	t.Run("отрицательный taken приводится к нулю", func(t *testing.T) {
		got := AvailableSeats(ptr.Ptr(int64(20)), ptr.Ptr(int64(-3)))
		assert.Equal(t, int64(20), *got)
	})
}
