package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTypesToCategory(t *testing.T) {
	t.Parallel()

	t.Run("priority tag wins over earlier generic tag", func(t *testing.T) {
		t.Parallel()

		category := mapTypesToCategory([]string{"store", "restaurant", "point_of_interest"})

		assert.Equal(t, "Restaurantes", category.Name)
		assert.Equal(t, "restaurant-outline", category.Icon)
		assert.Equal(t, "#E74C3C", category.Color)
	})

	t.Run("falls back to first mapped tag", func(t *testing.T) {
		t.Parallel()

		category := mapTypesToCategory([]string{"point_of_interest", "bakery", "store"})

		assert.Equal(t, "Cafeterías", category.Name)
	})

	t.Run("unmapped tags resolve to the default category", func(t *testing.T) {
		t.Parallel()

		category := mapTypesToCategory([]string{"point_of_interest", "establishment"})

		assert.Equal(t, "Otros", category.Name)
		assert.Equal(t, "location-outline", category.Icon)
		assert.Equal(t, "#95A5A6", category.Color)
	})

	t.Run("empty tag list resolves to the default category", func(t *testing.T) {
		t.Parallel()

		category := mapTypesToCategory(nil)

		assert.Equal(t, "Otros", category.Name)
	})
}

func TestPriceRangeForLevel(t *testing.T) {
	t.Parallel()

	level := func(v int) *int { return &v }

	testCases := []struct {
		name     string
		level    *int
		expected string
	}{
		{"unknown level", nil, "$"},
		{"free", level(0), "Gratis"},
		{"cheap", level(1), "$"},
		{"moderate", level(2), "$$"},
		{"expensive", level(3), "$$$"},
		{"very expensive", level(4), "$$$$"},
		{"out of range", level(9), "$"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, priceRangeForLevel(testCase.level))
		})
	}
}
