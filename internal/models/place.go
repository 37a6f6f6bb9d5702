package models

// ExternalPlace is a raw candidate returned by the external place-search
// provider. It is consumed by the relevance gate and the normalizer and is
// never persisted.
type ExternalPlace struct {
	PlaceID          string      // PlaceID is the provider-unique identifier of the place.
	Name             string      // Name is the display name of the place.
	FormattedAddress string      // FormattedAddress is the full human-readable address.
	Vicinity         string      // Vicinity is a short neighbourhood-level address.
	Location         Coordinates // Location is the geographical position of the place.
	Types            []string    // Types are the provider category tags (restaurant, cafe, ...).
	Rating           float64     // Rating is the average user rating, 0 when unrated.
	RatingCount      int         // RatingCount is the number of user ratings.
	PriceLevel       *int        // PriceLevel is the 0..4 price ordinal, nil when unknown.
	PhotoReference   string      // PhotoReference is an opaque token used to build a photo URL.
}

// PlaceCategory describes how a category is presented in the feed.
type PlaceCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// PlaceImage is a single image attached to a first-party place.
type PlaceImage struct {
	URL       string `json:"image"`
	Caption   string `json:"caption,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
	Order     int    `json:"order"`
}

// FirstPartyPlace is a place row as it comes from the Spotlyvf backend
// database. Latitude, longitude and the average rating arrive string-encoded
// and are parsed defensively by the normalizer.
type FirstPartyPlace struct {
	ID            string        // ID is the UUID of the place.
	Name          string        // Name is the display name of the place.
	Description   string        // Description is a short free-text blurb.
	Category      PlaceCategory // Category is the curated category of the place.
	Address       string
	City          string
	State         string
	Country       string
	Latitude      string // Latitude is the string-encoded latitude.
	Longitude     string // Longitude is the string-encoded longitude.
	AverageRating string // AverageRating is the string-encoded decimal rating.
	TotalReviews  int
	PriceRange    string       // PriceRange is one of $, $$, $$$, $$$$.
	Images        []PlaceImage // Images are ordered, primary first when present.
}
