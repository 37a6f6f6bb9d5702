package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spotlyvf/scout/internal/config"
	"github.com/spotlyvf/scout/internal/geo"
	"github.com/spotlyvf/scout/internal/metrics"
	"github.com/spotlyvf/scout/internal/models"
	"github.com/spotlyvf/scout/internal/places"
	"github.com/spotlyvf/scout/internal/repository"
)

// ErrSuperseded is returned when a newer discovery request started while this
// one was still running. Callers should drop the response and keep the newer
// one.
var ErrSuperseded = errors.New("discovery request superseded by a newer one")

// DiscoveryService merges the first-party place database and the external
// place-search provider into one distance-sorted, de-duplicated feed. It is a
// stateless request/response pipeline: every call allocates fresh
// intermediate structures, so it is safe to invoke concurrently.
type DiscoveryService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // First-party place query capability
	searcher     places.Searcher      // External place-search capability
	providerName string               // Name of the provider for metrics labeling
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	tables       *config.SearchTables // Query-string tables driving the fan-out
	cfg          config.DiscoveryConfig
	locality     string        // Locality appended to free-text queries
	generation   atomic.Uint64 // Monotonic request generation for the staleness guard
}

// NewDiscoveryService creates a new instance of DiscoveryService. It takes a
// logger, the first-party repository, the external searcher, the provider
// name for metrics, metrics, the search tables and the pipeline tunables.
func NewDiscoveryService(
	log *slog.Logger,
	repo repository.Interface,
	searcher places.Searcher,
	providerName string,
	metrics *metrics.Metrics,
	tables *config.SearchTables,
	cfg config.DiscoveryConfig,
	locality string,
) *DiscoveryService {
	return &DiscoveryService{
		log:          log,
		repo:         repo,
		searcher:     searcher,
		providerName: providerName,
		metrics:      metrics,
		tables:       tables,
		cfg:          cfg,
		locality:     locality,
	}
}

// DiscoverRequest carries the caller's filters. Every field is optional.
type DiscoverRequest struct {
	Origin     *models.Coordinates // Current position; nil skips distances and the external source.
	CategoryID *int64              // First-party category filter.
	Query      string              // Free-text search.
}

// DiscoverPlaces is the single entry point of the aggregation pipeline. It
// fans out to the external source, fetches the first-party candidates,
// normalizes both into the unified shape and returns one list sorted by
// ascending distance from the origin, unknown distances last.
//
// A failing sub-source degrades to zero results for that source; an empty
// list is a valid, non-error outcome even when every source failed. The only
// error surfaced is ErrSuperseded, raised when a newer request overtook this
// one.
func (s *DiscoveryService) DiscoverPlaces(
	ctx context.Context,
	req DiscoverRequest,
) ([]models.UnifiedPlace, error) {
	gen := s.generation.Add(1)
	log := s.log.With("request_id", uuid.NewString())

	log.DebugContext(ctx, "Starting place discovery",
		"has_origin", req.Origin != nil, "category", req.CategoryID, "query", req.Query)

	firstParty, err := s.repo.ListPlaces(ctx, req.CategoryID, req.Query)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch first-party places, degrading to empty", "error", err)
		firstParty = nil
	}

	var external []models.ExternalPlace
	if req.Origin != nil {
		if req.Query != "" {
			external = s.searchByText(ctx, *req.Origin, req.Query)
		} else {
			external = s.searchFeed(ctx, log, *req.Origin, req.CategoryID)
		}
	}

	unified := make([]models.UnifiedPlace, 0, len(firstParty)+len(external))
	for _, record := range firstParty {
		unified = append(unified, s.normalizeFirstParty(ctx, record))
	}
	for _, record := range external {
		unified = append(unified, s.normalizeExternal(req.Origin, record))
	}

	aggregated := aggregate(req.Origin, unified)

	if s.generation.Load() != gen {
		log.InfoContext(ctx, "Discovery request superseded, dropping result")
		s.metrics.RequestsProcessed.WithLabelValues("superseded").Inc()
		return nil, ErrSuperseded
	}

	log.InfoContext(ctx, "Place discovery finished",
		"first_party", len(firstParty), "external", len(external), "total", len(aggregated))
	s.metrics.RequestsProcessed.WithLabelValues("success").Inc()
	s.metrics.PlacesReturned.Observe(float64(len(aggregated)))

	return aggregated, nil
}

// searchFeed runs the fallback chain of the default feed: category fan-out,
// then generic "near me" queries, then popular known places, then plain
// nearby searches by type. Each stage only runs when the previous one came
// back empty.
func (s *DiscoveryService) searchFeed(
	ctx context.Context,
	log *slog.Logger,
	origin models.Coordinates,
	categoryID *int64,
) []models.ExternalPlace {
	var candidates []models.ExternalPlace

	if categoryName := s.resolveCategoryName(ctx, log, categoryID); categoryName != "" {
		candidates = s.SearchByCategory(ctx, origin, categoryName, categoryRadiusMeters)
	}

	if len(candidates) == 0 {
		candidates = s.SearchNearbySpecific(ctx, origin, nearbyRadiusMeters)
	}
	if len(candidates) == 0 {
		candidates = s.SearchPopularKnownPlaces(ctx, origin, popularRadiusMeters)
	}
	if len(candidates) == 0 {
		candidates = s.SearchNearbyByTypes(ctx, origin, typesRadiusMeters)
	}

	relevant := s.filterRelevant(candidates, origin, s.cfg.MaxFeedDistanceKm)
	log.DebugContext(ctx, "External feed candidates after relevance gate",
		"raw", len(candidates), "relevant", len(relevant))

	return s.rankCandidates(relevant, origin)
}

// searchByText runs a single free-text search. The locality is appended
// unless the query already pins one down, which keeps results local.
func (s *DiscoveryService) searchByText(
	ctx context.Context,
	origin models.Coordinates,
	query string,
) []models.ExternalPlace {
	lowered := strings.ToLower(query)
	if !strings.Contains(lowered, "cerca") && !strings.Contains(lowered, strings.ToLower(s.locality)) {
		query = query + " cerca de mi " + s.locality
	}

	outcome := s.runTextQuery(ctx, query, origin, textRadiusMeters)
	if outcome.err != nil {
		s.log.WarnContext(ctx, "Text search failed, degrading to empty",
			"query", outcome.query, "error", outcome.err)
		s.metrics.SubQueries.WithLabelValues("failure").Inc()
		s.metrics.APIErrors.Inc()
		return nil
	}
	s.metrics.SubQueries.WithLabelValues("success").Inc()

	relevant := s.filterRelevant(outcome.places, origin, s.cfg.MaxSearchDistanceKm)

	return s.rankCandidates(relevant, origin)
}

// resolveCategoryName maps a first-party category ID to its display name,
// which keys the curated query tables. A lookup failure just skips the
// category stage of the fallback chain.
func (s *DiscoveryService) resolveCategoryName(
	ctx context.Context,
	log *slog.Logger,
	categoryID *int64,
) string {
	if categoryID == nil {
		return ""
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		log.WarnContext(ctx, "Failed to list categories, skipping category fan-out", "error", err)
		return ""
	}

	for _, category := range categories {
		if category.ID == *categoryID {
			return category.Name
		}
	}

	log.WarnContext(ctx, "Unknown category filter, skipping category fan-out", "category", *categoryID)

	return ""
}

// aggregate merges the normalized lists into the final feed order: ascending
// distance from the origin with unknown distances last. When no origin was
// supplied, distances stay unset and the incoming order is preserved. This is
// the single source of truth for the feed ordering; nothing downstream may
// re-sort or re-filter.
func aggregate(origin *models.Coordinates, unified []models.UnifiedPlace) []models.UnifiedPlace {
	if origin != nil {
		for i := range unified {
			if unified[i].DistanceKm == nil {
				distance := geo.DistanceKm(*origin, unified[i].Location)
				unified[i].DistanceKm = &distance
			}
		}
	}

	sort.SliceStable(unified, func(a, b int) bool {
		return distanceOrInf(unified[a]) < distanceOrInf(unified[b])
	})

	return unified
}

func distanceOrInf(place models.UnifiedPlace) float64 {
	if place.DistanceKm == nil {
		return math.Inf(1)
	}

	return *place.DistanceKm
}
