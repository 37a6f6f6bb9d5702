package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spotlyvf/scout/internal/models"
	"golang.org/x/time/rate"
)

// RESTBaseURL is the Google Places web service base URL.
const RESTBaseURL = "https://maps.googleapis.com/maps/api/place"

// RESTProvider implements Searcher against the raw Places web service.
// Unlike the official client it surfaces the response status verbatim, which
// keeps the "OK" / "ZERO_RESULTS" / anything-else contract explicit.
type RESTProvider struct {
	client   HTTPClient    // HTTP client for making requests
	baseURL  string        // Base URL for the Places web service
	apiKey   string        // API key with Places access
	language string        // language for localized results
	region   string        // region bias for results
	log      *slog.Logger  // Logger for logging operations
	limiter  *rate.Limiter // Rate limiter
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Common errors for the REST provider.
var (
	ErrRESTEmptyQuery     = errors.New("places REST provider got empty query")
	ErrRESTBadStatus      = errors.New("places REST API returned non-OK status")
	ErrRESTUnexpectedHTTP = errors.New("places REST API returned unexpected HTTP status")
)

// Places web service response (simplified for the search use-case).
type restSearchResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	Results      []restSearchResult `json:"results"`
}

type restSearchResult struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Vicinity         string `json:"vicinity"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       *int     `json:"price_level"`
	Photos           []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

// NewRESTProvider creates a new raw web service provider.
func NewRESTProvider(apiKey, language, region string, rateLimit int, log *slog.Logger) *RESTProvider {
	const timeout = 10

	return &RESTProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL:  RESTBaseURL,
		apiKey:   apiKey,
		language: language,
		region:   region,
		log:      log,
		limiter:  rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewRESTProviderWithClient allows injecting a custom HTTP client and base
// URL. Useful for testing against httptest servers.
func NewRESTProviderWithClient(
	client HTTPClient,
	baseURL, apiKey string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *RESTProvider {
	return &RESTProvider{
		client:   client,
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: "es",
		region:   "ec",
		log:      log,
		limiter:  limiter,
	}
}

// TextSearch issues a free-text search against textsearch/json.
func (rp *RESTProvider) TextSearch(
	ctx context.Context,
	query string,
	bias *models.Coordinates,
	radiusMeters int,
) ([]models.ExternalPlace, error) {
	if query == "" {
		return nil, ErrRESTEmptyQuery
	}

	params := url.Values{}
	params.Set("query", query)
	if bias != nil {
		params.Set("location", fmt.Sprintf("%f,%f", bias.Latitude, bias.Longitude))
		if radiusMeters > 0 {
			params.Set("radius", strconv.Itoa(radiusMeters))
		}
	}

	return rp.search(ctx, "textsearch", params)
}

// NearbySearch lists places of a single type around the origin using
// nearbysearch/json.
func (rp *RESTProvider) NearbySearch(
	ctx context.Context,
	origin models.Coordinates,
	radiusMeters int,
	placeType string,
) ([]models.ExternalPlace, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	params.Set("radius", strconv.Itoa(radiusMeters))
	if placeType != "" {
		params.Set("type", placeType)
	}

	return rp.search(ctx, "nearbysearch", params)
}

// PhotoURL synthesizes a photo URL for the given photo reference.
func (rp *RESTProvider) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf(
		"%s/photo?maxwidth=%d&photo_reference=%s&key=%s",
		rp.baseURL, maxWidth, photoReference, rp.apiKey,
	)
}

// search performs one request against the given endpoint and decodes the
// shared search response shape.
func (rp *RESTProvider) search(ctx context.Context, endpoint string, params url.Values) ([]models.ExternalPlace, error) {
	// Rate limit
	if err := rp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	params.Set("key", rp.apiKey)
	params.Set("language", rp.language)
	params.Set("region", rp.region)

	reqURL := fmt.Sprintf("%s/%s/json?%s", rp.baseURL, endpoint, params.Encode())

	rp.log.DebugContext(ctx, "Places REST request", "endpoint", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := rp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrRESTUnexpectedHTTP, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var decoded restSearchResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch decoded.Status {
	case "OK":
		return rp.convert(decoded.Results), nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrRESTBadStatus, decoded.Status, decoded.ErrorMessage)
	}
}

func (rp *RESTProvider) convert(results []restSearchResult) []models.ExternalPlace {
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
			Rating:      r.Rating,
			RatingCount: r.UserRatingsTotal,
			PriceLevel:  r.PriceLevel,
		}
		if len(r.Photos) > 0 {
			place.PhotoReference = r.Photos[0].PhotoReference
		}
		converted = append(converted, place)
	}

	return converted
}
