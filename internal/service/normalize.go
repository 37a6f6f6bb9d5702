package service

import (
	"context"
	"strconv"

	"github.com/spotlyvf/scout/internal/geo"
	"github.com/spotlyvf/scout/internal/models"
)

// photoMaxWidth is the width requested when synthesizing photo URLs.
const photoMaxWidth = 400

// normalizeExternal converts a raw external candidate into the unified shape
// the feed consumes. Provenance is tagged explicitly; fields that only exist
// for first-party places stay at their zero value.
func (s *DiscoveryService) normalizeExternal(
	origin *models.Coordinates,
	record models.ExternalPlace,
) models.UnifiedPlace {
	description := record.Vicinity
	if description == "" {
		description = record.FormattedAddress
	}
	if description != "" {
		description += " - Lugar verificado por Google"
	}

	unified := models.UnifiedPlace{
		ID:           record.PlaceID,
		Name:         record.Name,
		Description:  description,
		Category:     mapTypesToCategory(record.Types),
		Address:      firstNonEmpty(record.FormattedAddress, record.Vicinity),
		City:         "Ubicación actual",
		Location:     record.Location,
		Rating:       record.Rating,
		TotalReviews: record.RatingCount,
		PriceRange:   priceRangeForLevel(record.PriceLevel),
		IsExternal:   true,
		ExternalID:   record.PlaceID,
	}

	if record.PhotoReference != "" {
		unified.PrimaryImageURL = s.searcher.PhotoURL(record.PhotoReference, photoMaxWidth)
		unified.Images = []models.PlaceImage{{
			URL:       unified.PrimaryImageURL,
			Caption:   record.Name,
			IsPrimary: true,
			Order:     1,
		}}
	}

	if origin != nil {
		distance := geo.DistanceKm(*origin, record.Location)
		unified.DistanceKm = &distance
	}

	return unified
}

// normalizeFirstParty converts a backend place row into the unified shape.
// String-encoded numerics are parsed defensively: a malformed value falls
// back to 0.0 with a warning instead of failing the whole aggregation.
func (s *DiscoveryService) normalizeFirstParty(
	ctx context.Context,
	record models.FirstPartyPlace,
) models.UnifiedPlace {
	unified := models.UnifiedPlace{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Category:    record.Category,
		Address:     record.Address,
		City:        record.City,
		State:       record.State,
		Country:     record.Country,
		Location: models.Coordinates{
			Latitude:  s.parseFloatDefault(ctx, record.Latitude, "latitude", record.ID),
			Longitude: s.parseFloatDefault(ctx, record.Longitude, "longitude", record.ID),
		},
		Rating:       s.parseFloatDefault(ctx, record.AverageRating, "average_rating", record.ID),
		TotalReviews: record.TotalReviews,
		PriceRange:   record.PriceRange,
		Images:       record.Images,
		IsExternal:   false,
	}

	for _, image := range record.Images {
		if image.IsPrimary {
			unified.PrimaryImageURL = image.URL
			break
		}
	}

	return unified
}

func (s *DiscoveryService) parseFloatDefault(ctx context.Context, value, field, placeID string) float64 {
	if value == "" {
		return 0.0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		s.log.WarnContext(ctx, "Malformed numeric field on first-party place, defaulting to 0.0",
			"field", field, "value", value, "place", placeID)
		return 0.0
	}

	return parsed
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
