package places

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of place-search provider.
type ProviderType string

const (
	// ProviderTypeGoogle talks to the Places API through the official client.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeREST talks to the Places web service over raw HTTP.
	ProviderTypeREST ProviderType = "rest"
)

// ProviderConfig holds configuration for creating a place-search provider.
type ProviderConfig struct {
	Type      ProviderType // Type of provider to create
	APIKey    string       // API key for the Places API
	RateLimit int          // Rate limit for requests per second
	Language  string       // Language for localized results, e.g. "es"
	Region    string       // Region bias, e.g. "ec"
	Logger    *slog.Logger // Logger for the provider
}

// NewProvider creates a place-search provider based on the provided
// configuration. It decouples provider instantiation from the discovery
// pipeline, so the transport can be switched at runtime.
//
// Supported provider types:
// - "google": official Google Maps client
// - "rest": raw Places web service client
//
// Returns an error if the provider type is unsupported or if provider creation fails.
func NewProvider(config ProviderConfig) (Searcher, error) {
	switch config.Type {
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeREST:
		return newRESTProvider(config)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newGoogleProvider creates a provider backed by the official client.
func newGoogleProvider(config ProviderConfig) (Searcher, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}

	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.APIKey, config.Language, config.Region, config.Logger), nil
}

// newRESTProvider creates a provider backed by the raw web service.
func newRESTProvider(config ProviderConfig) (Searcher, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for REST provider")
	}

	if config.RateLimit == 0 {
		config.RateLimit = 5
		config.Logger.Warn("Rate limit for Places REST API not set, set a default value", "value", config.RateLimit)
	}

	return NewRESTProvider(config.APIKey, config.Language, config.Region, config.RateLimit, config.Logger), nil
}
