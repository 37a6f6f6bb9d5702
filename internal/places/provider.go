package places

import (
	"context"

	"github.com/spotlyvf/scout/internal/models"
)

// Searcher is the remote place-search capability consumed by the discovery
// fan-out. Implementations talk to the Google Places API, either through the
// official client or the raw web service.
//
// TextSearch issues a free-text query, optionally biased towards a coordinate
// and radius. NearbySearch lists places of a single provider type around an
// origin. Both treat "no results" as an empty slice, not an error.
type Searcher interface {
	TextSearch(ctx context.Context, query string, bias *models.Coordinates, radiusMeters int) ([]models.ExternalPlace, error)
	NearbySearch(ctx context.Context, origin models.Coordinates, radiusMeters int, placeType string) ([]models.ExternalPlace, error)
	PhotoURL(photoReference string, maxWidth int) string
}
