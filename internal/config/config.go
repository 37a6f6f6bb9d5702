package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the discovery service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the discovery HTTP and monitoring server.
// - ProviderType: The type of place-search provider to use (google, rest).
// - APIKey: The API key for the external place-search provider.
// - Language: The language requested from the provider (e.g. "es").
// - Region: The region bias sent to the provider (e.g. "ec").
// - Locality: The locality name appended to free-text queries for local bias.
// - TablesPath: Optional path to a YAML file with the search query tables.
// - Discovery: Tunables of the aggregation pipeline.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env          string
	Port         int
	ProviderType string
	APIKey       string
	Language     string
	Region       string
	Locality     string
	TablesPath   string
	Discovery    DiscoveryConfig
	Database     PostgresConfig
}

// DiscoveryConfig holds the tunables of the aggregation pipeline.
type DiscoveryConfig struct {
	MaxFeedDistanceKm   float64       // Maximum distance for feed candidates.
	MaxSearchDistanceKm float64       // Maximum distance for free-text search candidates.
	ResultLimit         int           // Cap on external candidates kept after ranking.
	QueryDelay          time.Duration // Delay between consecutive fan-out sub-queries.
	Bounds              Bounds        // Serviceable region bounding box.
}

// Bounds is the bounding box of the serviceable geography. Candidates outside
// of it are rejected by the relevance gate.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config struct.
func MustLoad() *Config {
	_ = godotenv.Load()

	healthPort, err := strconv.Atoi(setDefaultEnv("SCOUT_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for discovery server from configuration")
	}

	queryDelay, err := time.ParseDuration(setDefaultEnv("SCOUT_QUERY_DELAY", "100ms"))
	if err != nil {
		panic("failed to parse query delay from configuration")
	}

	resultLimit, err := strconv.Atoi(setDefaultEnv("SCOUT_RESULT_LIMIT", "25"))
	if err != nil {
		panic("failed to parse result limit from configuration, must be an integer type")
	}

	return &Config{
		Env:          setDefaultEnv("SCOUT_ENV", "production"),
		Port:         healthPort,
		ProviderType: setDefaultEnv("SCOUT_PROVIDER_TYPE", "google"),
		APIKey:       os.Getenv("SCOUT_PROVIDER_KEY"),
		Language:     setDefaultEnv("SCOUT_LANGUAGE", "es"),
		Region:       setDefaultEnv("SCOUT_REGION", "ec"),
		Locality:     setDefaultEnv("SCOUT_LOCALITY", "Quito"),
		TablesPath:   os.Getenv("SCOUT_TABLES_PATH"),
		Discovery: DiscoveryConfig{
			MaxFeedDistanceKm:   mustFloatEnv("SCOUT_MAX_FEED_DISTANCE_KM", "10"),
			MaxSearchDistanceKm: mustFloatEnv("SCOUT_MAX_SEARCH_DISTANCE_KM", "15"),
			ResultLimit:         resultLimit,
			QueryDelay:          queryDelay,
			Bounds: Bounds{
				North: mustFloatEnv("SCOUT_BOUND_NORTH", "1.5"),
				South: mustFloatEnv("SCOUT_BOUND_SOUTH", "-5.0"),
				East:  mustFloatEnv("SCOUT_BOUND_EAST", "-75.0"),
				West:  mustFloatEnv("SCOUT_BOUND_WEST", "-92.0"),
			},
		},
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     setDefaultEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}

func mustFloatEnv(key, override string) float64 {
	value, err := strconv.ParseFloat(setDefaultEnv(key, override), 64)
	if err != nil {
		panic("failed to parse " + key + " from configuration, must be a float type")
	}

	return value
}
