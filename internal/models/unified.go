package models

// UnifiedPlace is the single representation the feed consumes, regardless of
// whether the place came from the first-party database or the external
// provider.
//
// IsExternal is always set explicitly so consumers can branch on provenance.
// DistanceKm is populated whenever an origin coordinate was supplied to the
// aggregation call; nil means "unknown distance" and sorts after every known
// distance.
type UnifiedPlace struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Category        PlaceCategory `json:"category"`
	Address         string        `json:"address"`
	City            string        `json:"city,omitempty"`
	State           string        `json:"state,omitempty"`
	Country         string        `json:"country,omitempty"`
	Location        Coordinates   `json:"location"`
	Rating          float64       `json:"average_rating"`
	TotalReviews    int           `json:"total_reviews"`
	PriceRange      string        `json:"price_range"`
	Images          []PlaceImage  `json:"images"`
	PrimaryImageURL string        `json:"primary_image,omitempty"`
	IsExternal      bool          `json:"is_external"`
	ExternalID      string        `json:"external_id,omitempty"`
	DistanceKm      *float64      `json:"distance_km,omitempty"`
}
