package service

import (
	"context"
	"time"

	"github.com/spotlyvf/scout/internal/geo"
	"github.com/spotlyvf/scout/internal/models"
)

// Fan-out radii, in meters. A single nearby search returns a coarse result
// set, so the pipeline issues several curated text queries instead and widens
// the radius as the fallbacks get more generic.
const (
	categoryRadiusMeters = 5000
	nearbyRadiusMeters   = 2000
	popularRadiusMeters  = 5000
	typesRadiusMeters    = 4000
	textRadiusMeters     = 8000
)

// subQueryOutcome is the result of one fan-out sub-query. A failed sub-query
// carries its error here instead of aborting the batch: the fan-out swallows
// it, logs it, and moves on.
type subQueryOutcome struct {
	query  string
	places []models.ExternalPlace
	err    error
}

// SearchByCategory issues the curated text queries for the given category
// label around the origin and accumulates all results. Any single failing
// query is treated as zero results; the remaining batch still runs.
func (s *DiscoveryService) SearchByCategory(
	ctx context.Context,
	origin models.Coordinates,
	categoryLabel string,
	radiusMeters int,
) []models.ExternalPlace {
	queries := s.tables.QueriesForCategory(categoryLabel, s.locality)

	return s.runTextQueries(ctx, queries, origin, radiusMeters)
}

// SearchNearbySpecific issues the generic "near me" queries, used when a
// category search starves. Results farther than the requested radius are
// dropped immediately.
func (s *DiscoveryService) SearchNearbySpecific(
	ctx context.Context,
	origin models.Coordinates,
	radiusMeters int,
) []models.ExternalPlace {
	results := s.runTextQueries(ctx, s.tables.NearbyQueries, origin, radiusMeters)

	return withinRadius(results, origin, radiusMeters)
}

// SearchPopularKnownPlaces queries the well-known local place names one by
// one, a fallback for sparse regions where generic search underperforms.
func (s *DiscoveryService) SearchPopularKnownPlaces(
	ctx context.Context,
	origin models.Coordinates,
	radiusMeters int,
) []models.ExternalPlace {
	results := s.runTextQueries(ctx, s.tables.PopularPlaces, origin, radiusMeters)

	return withinRadius(results, origin, radiusMeters)
}

// SearchNearbyByTypes runs one nearby search per configured place type, the
// last fallback when every text-based strategy came back empty.
func (s *DiscoveryService) SearchNearbyByTypes(
	ctx context.Context,
	origin models.Coordinates,
	radiusMeters int,
) []models.ExternalPlace {
	var all []models.ExternalPlace
	for i, placeType := range s.tables.NearbyTypes {
		if i > 0 {
			if err := sleepCtx(ctx, s.cfg.QueryDelay); err != nil {
				break
			}
		}

		start := time.Now()
		places, err := s.searcher.NearbySearch(ctx, origin, radiusMeters, placeType)
		s.metrics.RequestSeconds.WithLabelValues(s.providerName).Observe(time.Since(start).Seconds())

		if err != nil {
			s.log.WarnContext(ctx, "Nearby sub-query failed, continuing batch",
				"type", placeType, "error", err)
			s.metrics.SubQueries.WithLabelValues("failure").Inc()
			s.metrics.APIErrors.Inc()
			continue
		}
		s.metrics.SubQueries.WithLabelValues("success").Inc()
		all = append(all, places...)
	}

	return dedupByPlaceID(all)
}

// runTextQueries issues the queries sequentially with the configured delay
// between consecutive calls. The delay is a deliberate throttle for the
// provider's rate limit, not an optimization target.
func (s *DiscoveryService) runTextQueries(
	ctx context.Context,
	queries []string,
	origin models.Coordinates,
	radiusMeters int,
) []models.ExternalPlace {
	var all []models.ExternalPlace
	for i, query := range queries {
		if i > 0 {
			if err := sleepCtx(ctx, s.cfg.QueryDelay); err != nil {
				break
			}
		}

		outcome := s.runTextQuery(ctx, query, origin, radiusMeters)
		if outcome.err != nil {
			s.log.WarnContext(ctx, "Text sub-query failed, continuing batch",
				"query", outcome.query, "error", outcome.err)
			s.metrics.SubQueries.WithLabelValues("failure").Inc()
			s.metrics.APIErrors.Inc()
			continue
		}
		s.metrics.SubQueries.WithLabelValues("success").Inc()
		all = append(all, outcome.places...)
	}

	return dedupByPlaceID(all)
}

func (s *DiscoveryService) runTextQuery(
	ctx context.Context,
	query string,
	origin models.Coordinates,
	radiusMeters int,
) subQueryOutcome {
	start := time.Now()
	places, err := s.searcher.TextSearch(ctx, query, &origin, radiusMeters)
	s.metrics.RequestSeconds.WithLabelValues(s.providerName).Observe(time.Since(start).Seconds())

	return subQueryOutcome{query: query, places: places, err: err}
}

// withinRadius drops results farther from the origin than the search radius.
// Text search biases towards the origin but does not hard-bound results.
func withinRadius(records []models.ExternalPlace, origin models.Coordinates, radiusMeters int) []models.ExternalPlace {
	maxKm := float64(radiusMeters) / 1000

	nearby := make([]models.ExternalPlace, 0, len(records))
	for _, record := range records {
		if geo.DistanceKm(origin, record.Location) <= maxKm {
			nearby = append(nearby, record)
		}
	}

	return nearby
}

func sleepCtx(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
