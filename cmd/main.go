package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spotlyvf/scout/internal/config"
	"github.com/spotlyvf/scout/internal/metrics"
	"github.com/spotlyvf/scout/internal/models"
	"github.com/spotlyvf/scout/internal/places"
	"github.com/spotlyvf/scout/internal/repository"
	"github.com/spotlyvf/scout/internal/service"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize the database connection.
	dtb, err := repository.NewDatabase(
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// Create a new repository instance using the database connection.
	repo := repository.NewRepository(dtb, logger)

	// Create the place-search provider using the factory pattern based on configuration.
	// This allows runtime selection between the official client and the raw REST client.
	rateLimit := 10
	providerConfig := places.ProviderConfig{
		Type:      places.ProviderType(cfg.ProviderType),
		APIKey:    cfg.APIKey,
		RateLimit: rateLimit,
		Language:  cfg.Language,
		Region:    cfg.Region,
		Logger:    logger,
	}

	searcher, err := places.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create place-search provider: %v", err)
	}

	logger.InfoContext(ctx, "Place-search provider initialized", "type", cfg.ProviderType)

	// Load the curated query tables, built-in defaults when no path is set.
	tables, err := config.LoadSearchTables(cfg.TablesPath)
	if err != nil {
		log.Fatalf("Failed to load search tables: %v", err)
	}

	// Init the discovery service wiring both sources together.
	discovery := service.NewDiscoveryService(
		logger,
		repo,
		searcher,
		cfg.ProviderType, // Provider name for metrics
		appMetrics,
		tables,
		cfg.Discovery,
		cfg.Locality,
	)

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	server := newServer(ctx, logger, reg, dtb, discovery, cfg.Port)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "Discovery server failed", "error", err)
		}
	}()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownTimeout := 10 * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server gracefully", "error", err)
	}
	dtb.Close()

	// Log graceful shutdown completion.
	logger.Info("Application stopped gracefully.")
}

// newServer builds the HTTP server exposing the discovery endpoint alongside
// health check and metrics endpoints.
func newServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	dtb *pgxpool.Pool,
	discovery *service.DiscoveryService,
	port int,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		log.DebugContext(ctx, "Performing health checks...")
		status, body := http.StatusOK, "OK"
		if err := dtb.Ping(ctx); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
		writer.WriteHeader(status)
		_, err := writer.Write([]byte(body))
		if err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}

		log.DebugContext(ctx, "Health checks completed", "status", status)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /v1/places/discover", discoverHandler(log, discovery))

	readTimeout := 5
	writeTimeout := 30
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}
}

// discoverHandler parses the query parameters into a discovery request and
// serves the aggregated feed as JSON. lat and lng come as a pair; a lone one
// is a client error.
func discoverHandler(log *slog.Logger, discovery *service.DiscoveryService) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		req, err := parseDiscoverRequest(request)
		if err != nil {
			writeJSON(log, writer, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		results, err := discovery.DiscoverPlaces(request.Context(), req)
		if errors.Is(err, service.ErrSuperseded) {
			writeJSON(log, writer, http.StatusConflict, map[string]string{"error": "request superseded"})
			return
		}
		if err != nil {
			log.ErrorContext(request.Context(), "Discovery failed", "error", err)
			writeJSON(log, writer, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		writeJSON(log, writer, http.StatusOK, map[string]any{
			"places": results,
			"total":  len(results),
		})
	}
}

func parseDiscoverRequest(request *http.Request) (service.DiscoverRequest, error) {
	query := request.URL.Query()
	req := service.DiscoverRequest{Query: query.Get("q")}

	latRaw, lngRaw := query.Get("lat"), query.Get("lng")
	if (latRaw == "") != (lngRaw == "") {
		return req, errors.New("lat and lng must be provided together")
	}
	if latRaw != "" {
		lat, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid lat: %w", err)
		}
		lng, err := strconv.ParseFloat(lngRaw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid lng: %w", err)
		}
		req.Origin = &models.Coordinates{Latitude: lat, Longitude: lng}
	}

	if categoryRaw := query.Get("category"); categoryRaw != "" {
		categoryID, err := strconv.ParseInt(categoryRaw, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid category: %w", err)
		}
		req.CategoryID = &categoryID
	}

	return req, nil
}

func writeJSON(log *slog.Logger, writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		log.Error("failed to write reply", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
