package places

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spotlyvf/scout/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider implements Searcher on top of the official Google Maps
// client. The thin GoogleAPIClient interface exists so tests can mock the
// client without touching the network.
type GoogleProvider struct {
	client   GoogleAPIClient // client is the Google Maps API client
	apiKey   string          // apiKey is reused when synthesizing photo URLs
	language string          // language for localized results, e.g. "es"
	region   string          // region bias, e.g. "ec"
	log      *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of the Google Maps client used by the
// provider.
type GoogleAPIClient interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// NewGoogleProvider initializes a GoogleProvider with the given client, API
// key, localization settings and logger.
func NewGoogleProvider(client GoogleAPIClient, apiKey, language, region string, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, apiKey: apiKey, language: language, region: region, log: log}
}

// TextSearch issues a Places text search for the given query. The bias
// coordinate and radius, when provided, steer results towards the caller's
// surroundings without hard-bounding them.
func (gp *GoogleProvider) TextSearch(
	ctx context.Context,
	query string,
	bias *models.Coordinates,
	radiusMeters int,
) ([]models.ExternalPlace, error) {
	gp.log.DebugContext(ctx, "Text search using Google Places", "query", query)

	req := &maps.TextSearchRequest{
		Query:    query,
		Language: gp.language,
		Region:   gp.region,
	}
	if bias != nil {
		req.Location = &maps.LatLng{Lat: bias.Latitude, Lng: bias.Longitude}
		if radiusMeters > 0 {
			req.Radius = uint(radiusMeters)
		}
	}

	resp, err := gp.client.TextSearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to text search places: %w", err)
	}

	return convertSearchResults(resp.Results), nil
}

// NearbySearch lists places of a single provider type around the origin.
func (gp *GoogleProvider) NearbySearch(
	ctx context.Context,
	origin models.Coordinates,
	radiusMeters int,
	placeType string,
) ([]models.ExternalPlace, error) {
	gp.log.DebugContext(ctx, "Nearby search using Google Places", "type", placeType)

	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: origin.Latitude, Lng: origin.Longitude},
		Radius:   uint(radiusMeters),
		Language: gp.language,
	}
	if placeType != "" {
		parsed, perr := maps.ParsePlaceType(placeType)
		if perr != nil {
			return nil, fmt.Errorf("failed to parse place type %q: %w", placeType, perr)
		}
		req.Type = parsed
	}

	resp, err := gp.client.NearbySearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to nearby search places: %w", err)
	}

	return convertSearchResults(resp.Results), nil
}

// PhotoURL synthesizes a photo URL for the given photo reference.
func (gp *GoogleProvider) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=%d&photo_reference=%s&key=%s",
		maxWidth, photoReference, gp.apiKey,
	)
}

// convertSearchResults maps official client results into the domain candidate
// shape. The legacy client reports price level as a plain int, so an absent
// price and an explicit "free" are indistinguishable here; only strictly
// positive levels are carried over.
func convertSearchResults(results []maps.PlacesSearchResult) []models.ExternalPlace {
	converted := make([]models.ExternalPlace, 0, len(results))
	for _, r := range results {
		place := models.ExternalPlace{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			FormattedAddress: r.FormattedAddress,
			Vicinity:         r.Vicinity,
			Location: models.Coordinates{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Types:       r.Types,
			Rating:      float64(r.Rating),
			RatingCount: r.UserRatingsTotal,
		}
		if r.PriceLevel > 0 {
			level := r.PriceLevel
			place.PriceLevel = &level
		}
		if len(r.Photos) > 0 {
			place.PhotoReference = r.Photos[0].PhotoReference
		}
		converted = append(converted, place)
	}

	return converted
}
