package service

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spotlyvf/scout/internal/config"
	"github.com/spotlyvf/scout/internal/geo"
	"github.com/spotlyvf/scout/internal/metrics"
	"github.com/spotlyvf/scout/internal/models"
	"github.com/spotlyvf/scout/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quitoOrigin is the reference point used across the service tests.
var quitoOrigin = models.Coordinates{Latitude: -0.1807, Longitude: -78.4678}

func testDiscoveryConfig() config.DiscoveryConfig {
	return config.DiscoveryConfig{
		MaxFeedDistanceKm:   10,
		MaxSearchDistanceKm: 15,
		ResultLimit:         25,
		QueryDelay:          time.Millisecond,
		Bounds:              config.Bounds{North: 1.5, South: -5.0, East: -75.0, West: -92.0},
	}
}

func newTestService(
	t *testing.T,
	tables *config.SearchTables,
	cfg config.DiscoveryConfig,
) (*DiscoveryService, *mocks.Interface, *mocks.Searcher) {
	t.Helper()

	mockRepo := mocks.NewInterface(t)
	mockSearcher := mocks.NewSearcher(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reg := prometheus.NewRegistry()

	service := NewDiscoveryService(
		logger, mockRepo, mockSearcher, "google", metrics.NewMetrics(reg), tables, cfg, "Quito",
	)

	return service, mockRepo, mockSearcher
}

// nearQuito returns a coordinate roughly kmNorth kilometers north of the
// origin, close enough for the tests' distance assertions.
func nearQuito(kmNorth float64) models.Coordinates {
	return models.Coordinates{
		Latitude:  quitoOrigin.Latitude + kmNorth/111.19,
		Longitude: quitoOrigin.Longitude,
	}
}

func TestFilterRelevant(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t, config.DefaultSearchTables(), testDiscoveryConfig())

	t.Run("rejects generic category tags", func(t *testing.T) {
		t.Parallel()

		records := []models.ExternalPlace{
			{PlaceID: "a", Name: "Quito", Types: []string{"political", "locality"}, Location: nearQuito(1)},
			{PlaceID: "b", Name: "Correos del Ecuador", Types: []string{"postal_code"}, Location: nearQuito(1)},
			{PlaceID: "c", Name: "Avenida Amazonas", Types: []string{"route"}, Location: nearQuito(1)},
			{PlaceID: "d", Name: "Cafetería Central", Types: []string{"cafe"}, Location: nearQuito(1)},
		}

		relevant := service.filterRelevant(records, quitoOrigin, 10)

		require.Len(t, relevant, 1)
		assert.Equal(t, "d", relevant[0].PlaceID)
	})

	t.Run("rejects too short names", func(t *testing.T) {
		t.Parallel()

		records := []models.ExternalPlace{
			{PlaceID: "a", Name: "KFC", Types: []string{"restaurant"}, Location: nearQuito(1)},
			{PlaceID: "b", Name: "Kentucky Fried Chicken", Types: []string{"restaurant"}, Location: nearQuito(1)},
		}

		relevant := service.filterRelevant(records, quitoOrigin, 10)

		require.Len(t, relevant, 1)
		assert.Equal(t, "b", relevant[0].PlaceID)
	})

	t.Run("rejects locations outside the bounding box", func(t *testing.T) {
		t.Parallel()

		records := []models.ExternalPlace{
			{
				PlaceID:  "a",
				Name:     "Museo de Bogotá",
				Types:    []string{"museum"},
				Location: models.Coordinates{Latitude: 4.60, Longitude: -74.08},
			},
			{PlaceID: "b", Name: "Museo de la Ciudad", Types: []string{"museum"}, Location: nearQuito(1)},
		}

		relevant := service.filterRelevant(records, quitoOrigin, 10)

		require.Len(t, relevant, 1)
		assert.Equal(t, "b", relevant[0].PlaceID)
	})

	t.Run("distance cap is boundary inclusive", func(t *testing.T) {
		t.Parallel()

		location := nearQuito(7)
		exactDistance := geo.DistanceKm(quitoOrigin, location)
		records := []models.ExternalPlace{
			{PlaceID: "a", Name: "Parque La Carolina", Types: []string{"park"}, Location: location},
		}

		relevant := service.filterRelevant(records, quitoOrigin, exactDistance)

		require.Len(t, relevant, 1)

		relevant = service.filterRelevant(records, quitoOrigin, exactDistance-0.001)

		assert.Empty(t, relevant)
	})

	t.Run("deduplicates by place ID keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		records := []models.ExternalPlace{
			{PlaceID: "dup", Name: "Primer Restaurante", Types: []string{"restaurant"}, Location: nearQuito(1)},
			{PlaceID: "solo", Name: "Cafetería Única", Types: []string{"cafe"}, Location: nearQuito(2)},
			{PlaceID: "dup", Name: "Segundo Restaurante", Types: []string{"restaurant"}, Location: nearQuito(3)},
		}

		relevant := service.filterRelevant(records, quitoOrigin, 10)

		require.Len(t, relevant, 2)
		assert.Equal(t, "Primer Restaurante", relevant[0].Name)
		assert.Equal(t, "solo", relevant[1].PlaceID)
	})
}

func TestRankCandidates(t *testing.T) {
	t.Parallel()

	t.Run("orders by ascending distance", func(t *testing.T) {
		t.Parallel()

		service, _, _ := newTestService(t, config.DefaultSearchTables(), testDiscoveryConfig())
		records := []models.ExternalPlace{
			{PlaceID: "far", Name: "Lejos", Location: nearQuito(8)},
			{PlaceID: "near", Name: "Cerca", Location: nearQuito(2)},
			{PlaceID: "mid", Name: "Medio", Location: nearQuito(5)},
		}

		ranked := service.rankCandidates(records, quitoOrigin)

		require.Len(t, ranked, 3)
		assert.Equal(t, "near", ranked[0].PlaceID)
		assert.Equal(t, "mid", ranked[1].PlaceID)
		assert.Equal(t, "far", ranked[2].PlaceID)
	})

	t.Run("rating breaks ties inside the equidistance band", func(t *testing.T) {
		t.Parallel()

		service, _, _ := newTestService(t, config.DefaultSearchTables(), testDiscoveryConfig())
		records := []models.ExternalPlace{
			{PlaceID: "closer-worse", Name: "Cercano", Rating: 3.1, Location: nearQuito(0.2)},
			{PlaceID: "farther-better", Name: "Mejor", Rating: 4.8, Location: nearQuito(0.9)},
			{PlaceID: "distant-best", Name: "Lejano", Rating: 5.0, Location: nearQuito(6)},
		}

		ranked := service.rankCandidates(records, quitoOrigin)

		require.Len(t, ranked, 3)
		assert.Equal(t, "farther-better", ranked[0].PlaceID)
		assert.Equal(t, "closer-worse", ranked[1].PlaceID)
		assert.Equal(t, "distant-best", ranked[2].PlaceID)
	})

	t.Run("caps the list to the configured limit", func(t *testing.T) {
		t.Parallel()

		cfg := testDiscoveryConfig()
		cfg.ResultLimit = 2
		service, _, _ := newTestService(t, config.DefaultSearchTables(), cfg)
		records := []models.ExternalPlace{
			{PlaceID: "a", Location: nearQuito(2)},
			{PlaceID: "b", Location: nearQuito(4)},
			{PlaceID: "c", Location: nearQuito(6)},
		}

		ranked := service.rankCandidates(records, quitoOrigin)

		require.Len(t, ranked, 2)
		assert.Equal(t, "a", ranked[0].PlaceID)
		assert.Equal(t, "b", ranked[1].PlaceID)
	})
}
