package places_test

import (
	"log/slog"
	"testing"

	"github.com/spotlyvf/scout/internal/models"
	"github.com/spotlyvf/scout/internal/places"
	"github.com/spotlyvf/scout/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleProvider_TextSearch(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := places.NewGoogleProvider(mockClient, "test-key", "es", "ec", slog.Default())
	ctx := t.Context()

	t.Run("api returns error", func(t *testing.T) {
		req := &maps.TextSearchRequest{Query: "pizza Quito", Language: "es", Region: "ec"}

		mockClient.On("TextSearch", ctx, req).Return(maps.PlacesSearchResponse{}, assert.AnError).Once()

		_, err := provider.TextSearch(ctx, "pizza Quito", nil, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		mockClient.AssertExpectations(t)
	})

	t.Run("successfull text search with bias", func(t *testing.T) {
		req := &maps.TextSearchRequest{
			Query:    "pizza Quito",
			Language: "es",
			Region:   "ec",
			Location: &maps.LatLng{Lat: -0.1807, Lng: -78.4678},
			Radius:   5000,
		}
		mockResponse := maps.PlacesSearchResponse{
			Results: []maps.PlacesSearchResult{
				{
					PlaceID:          "ChIJ123",
					Name:             "SportPizza",
					FormattedAddress: "Av. Amazonas, Quito",
					Geometry: maps.AddressGeometry{
						Location: maps.LatLng{Lat: -0.18, Lng: -78.47},
					},
					Types:            []string{"restaurant", "food"},
					Rating:           4.4,
					UserRatingsTotal: 120,
					PriceLevel:       2,
					Photos:           []maps.Photo{{PhotoReference: "ref-1"}},
				},
			},
		}

		mockClient.On("TextSearch", ctx, req).Return(mockResponse, nil).Once()

		bias := &models.Coordinates{Latitude: -0.1807, Longitude: -78.4678}
		results, err := provider.TextSearch(ctx, "pizza Quito", bias, 5000)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "ChIJ123", results[0].PlaceID)
		assert.Equal(t, "SportPizza", results[0].Name)
		assert.InEpsilon(t, -0.18, results[0].Location.Latitude, 0.0001)
		assert.InEpsilon(t, 4.4, results[0].Rating, 0.001)
		require.NotNil(t, results[0].PriceLevel)
		assert.Equal(t, 2, *results[0].PriceLevel)
		assert.Equal(t, "ref-1", results[0].PhotoReference)
		mockClient.AssertExpectations(t)
	})

	t.Run("empty response yields empty slice", func(t *testing.T) {
		req := &maps.TextSearchRequest{Query: "nothing", Language: "es", Region: "ec"}

		mockClient.On("TextSearch", ctx, req).Return(maps.PlacesSearchResponse{}, nil).Once()

		results, err := provider.TextSearch(ctx, "nothing", nil, 0)

		require.NoError(t, err)
		assert.Empty(t, results)
		mockClient.AssertExpectations(t)
	})
}

func TestGoogleProvider_NearbySearch(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := places.NewGoogleProvider(mockClient, "test-key", "es", "ec", slog.Default())
	ctx := t.Context()
	origin := models.Coordinates{Latitude: -0.1807, Longitude: -78.4678}

	t.Run("successfull nearby search", func(t *testing.T) {
		req := &maps.NearbySearchRequest{
			Location: &maps.LatLng{Lat: -0.1807, Lng: -78.4678},
			Radius:   4000,
			Language: "es",
			Type:     maps.PlaceTypeRestaurant,
		}
		mockResponse := maps.PlacesSearchResponse{
			Results: []maps.PlacesSearchResult{
				{PlaceID: "ChIJ456", Name: "Don Feliciano", Vicinity: "La Floresta"},
			},
		}

		mockClient.On("NearbySearch", ctx, req).Return(mockResponse, nil).Once()

		results, err := provider.NearbySearch(ctx, origin, 4000, "restaurant")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Don Feliciano", results[0].Name)
		assert.Nil(t, results[0].PriceLevel)
		mockClient.AssertExpectations(t)
	})

	t.Run("invalid place type", func(t *testing.T) {
		_, err := provider.NearbySearch(ctx, origin, 4000, "definitely_not_a_type")

		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse place type")
	})
}

func TestGoogleProvider_PhotoURL(t *testing.T) {
	t.Parallel()
	provider := places.NewGoogleProvider(nil, "photo-key", "es", "ec", slog.Default())

	url := provider.PhotoURL("some-ref", 400)

	assert.Contains(t, url, "maxwidth=400")
	assert.Contains(t, url, "photo_reference=some-ref")
	assert.Contains(t, url, "key=photo-key")
}
