// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// GeocodeConfig provides settings for the Nominatim geocoding client.
type GeocodeConfig interface {
	GetNominatimBaseURL() string
	GetGeocodeCountryCodes() string
	GetHTTPUserAgent() string
}

// POIConfig provides settings for the Overpass points-of-interest client.
type POIConfig interface {
	GetOverpassURL() string
	GetHTTPUserAgent() string
}

// DiscoveryConfig provides settings for discovery sessions.
type DiscoveryConfig interface {
	GetSessionTTL() time.Duration
	GetDefaultCenterLat() float64
	GetDefaultCenterLon() float64
	GetDefaultCenterLabel() string
	GetDefaultRadiusMeters() int
}

// RecipesConfig provides settings for the external recipe search endpoint.
type RecipesConfig interface {
	GetRecipeAPIURL() string
}

// CulturalEventsConfig provides settings for the PredictHQ events client.
type CulturalEventsConfig interface {
	GetPredictHQURL() string
	GetPredictHQToken() string
	IsCulturalEventsEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	CORSAllowAll        bool
	CORSOrigins         []string
	CORSAllowCreds      bool
	NominatimBaseURL    string
	OverpassURL         string
	HTTPUserAgent       string
	GeocodeCountryCodes string
	SessionTTL          time.Duration
	DefaultCenterLat    float64
	DefaultCenterLon    float64
	DefaultCenterLabel  string
	DefaultRadiusMeters int
	RecipeAPIURL        string
	PredictHQURL        string
	PredictHQToken      string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// GeocodeConfig implementation
func (c *Config) GetNominatimBaseURL() string    { return c.NominatimBaseURL }
func (c *Config) GetGeocodeCountryCodes() string { return c.GeocodeCountryCodes }
func (c *Config) GetHTTPUserAgent() string       { return c.HTTPUserAgent }

// POIConfig implementation
func (c *Config) GetOverpassURL() string { return c.OverpassURL }

// DiscoveryConfig implementation
func (c *Config) GetSessionTTL() time.Duration  { return c.SessionTTL }
func (c *Config) GetDefaultCenterLat() float64  { return c.DefaultCenterLat }
func (c *Config) GetDefaultCenterLon() float64  { return c.DefaultCenterLon }
func (c *Config) GetDefaultCenterLabel() string { return c.DefaultCenterLabel }
func (c *Config) GetDefaultRadiusMeters() int   { return c.DefaultRadiusMeters }

// RecipesConfig implementation
func (c *Config) GetRecipeAPIURL() string { return c.RecipeAPIURL }

// CulturalEventsConfig implementation
func (c *Config) GetPredictHQURL() string      { return c.PredictHQURL }
func (c *Config) GetPredictHQToken() string    { return c.PredictHQToken }
func (c *Config) IsCulturalEventsEnabled() bool { return c.PredictHQToken != "" }

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		NominatimBaseURL:    getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OverpassURL:         getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		HTTPUserAgent:       getEnv("HTTP_USER_AGENT", "SaboresCulturales/1.0"),
		GeocodeCountryCodes: getEnv("GEOCODE_COUNTRY_CODES", "mx"),
		SessionTTL:          mustDuration(getEnv("SESSION_TTL", "30m")),
		DefaultCenterLat:    mustFloat(getEnv("DEFAULT_CENTER_LAT", "16.7569")),
		DefaultCenterLon:    mustFloat(getEnv("DEFAULT_CENTER_LON", "-93.1292")),
		DefaultCenterLabel:  getEnv("DEFAULT_CENTER_LABEL", "Tuxtla Gutiérrez, Chiapas"),
		DefaultRadiusMeters: mustInt(getEnv("DEFAULT_RADIUS_METERS", "2000")),
		RecipeAPIURL:        getEnv("RECIPE_API_URL", "http://127.0.0.1:8000"),
		PredictHQURL:        getEnv("PREDICTHQ_URL", "https://api.predicthq.com"),
		PredictHQToken:      getEnv("PREDICTHQ_TOKEN", ""),
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be a positive duration")
	}
	if cfg.DefaultCenterLat < -90 || cfg.DefaultCenterLat > 90 {
		return nil, fmt.Errorf("DEFAULT_CENTER_LAT out of range")
	}
	if cfg.DefaultCenterLon < -180 || cfg.DefaultCenterLon > 180 {
		return nil, fmt.Errorf("DEFAULT_CENTER_LON out of range")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	// Sessions are seeded with this radius, so it must sit inside the same
	// enumeration the radius-change endpoint enforces.
	switch cfg.DefaultRadiusMeters {
	case 500, 1000, 2000, 5000, 10000:
	default:
		return nil, fmt.Errorf("DEFAULT_RADIUS_METERS must be one of 500, 1000, 2000, 5000, 10000")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
