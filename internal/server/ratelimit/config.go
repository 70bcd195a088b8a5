package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Exact path, "/"-terminated prefix or pattern with {name} segments
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Defaults for LoadConfig
const (
	DefaultLimit         = 1000
	DefaultAnalyzeLimit  = 60
	DefaultAnalyzeBurst  = 10
	defaultDeleteLimit   = 100
	defaultCleanupPeriod = 5 * time.Minute
)

// analyzePaths run the full extraction pipeline per request
var analyzePaths = []string{"/analyze", "/analyze/text", "/analyze/stream"}

// LoadConfig loads rate limiting configuration from environment variables:
// RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT_LIMIT, RATE_LIMIT_DEFAULT_WINDOW,
// RATE_LIMIT_ANALYZE_LIMIT, RATE_LIMIT_ANALYZE_BURST, RATE_LIMIT_CLEANUP_INTERVAL,
// RATE_LIMIT_WHITELIST and RATE_LIMIT_BLACKLIST. Malformed values fall back to defaults.
func LoadConfig() *Config {
	if !envOr("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	analyzeLimit := envOr("RATE_LIMIT_ANALYZE_LIMIT", DefaultAnalyzeLimit, strconv.Atoi)
	analyzeBurst := envOr("RATE_LIMIT_ANALYZE_BURST", DefaultAnalyzeBurst, strconv.Atoi)

	return &Config{
		Enabled:         true,
		DefaultLimit:    envOr("RATE_LIMIT_DEFAULT_LIMIT", DefaultLimit, strconv.Atoi),
		DefaultWindow:   envOr("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: envOr("RATE_LIMIT_CLEANUP_INTERVAL", defaultCleanupPeriod, time.ParseDuration),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: endpointConfigs(analyzeLimit, analyzeBurst),
	}
}

// DefaultEndpointConfigs returns the endpoint limits used when no overrides are set.
// Reads fall back to the default limit; /health is unlimited in MatchEndpoint.
func DefaultEndpointConfigs() []EndpointConfig {
	return endpointConfigs(DefaultAnalyzeLimit, DefaultAnalyzeBurst)
}

func endpointConfigs(analyzeLimit, analyzeBurst int) []EndpointConfig {
	configs := make([]EndpointConfig, 0, len(analyzePaths)+1)
	for _, path := range analyzePaths {
		configs = append(configs, EndpointConfig{
			Path:   path,
			Method: "POST",
			Limit:  analyzeLimit,
			Window: time.Minute,
			Burst:  analyzeBurst,
		})
	}
	return append(configs, EndpointConfig{
		Path:   "/analyses/{id}",
		Method: "DELETE",
		Limit:  defaultDeleteLimit,
		Window: time.Minute,
		Burst:  DefaultAnalyzeBurst,
	})
}

// envOr parses the environment variable key, returning def when it is unset or malformed.
func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	parsed, err := parse(value)
	if err != nil {
		return def
	}
	return parsed
}

// parseIPList parses a comma-separated list of client addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
