package ratelimit

import (
	"strings"
)

// healthEndpoint is never limited
var healthEndpoint = EndpointConfig{Path: "/health", Method: "GET"}

// MatchEndpoint returns the endpoint configuration for a request, or nil when
// none applies. Configured paths match exactly, as a "/"-terminated prefix, or
// segment by segment with "{name}" wildcards as in http.ServeMux patterns.
// Exact paths win over wildcard patterns, which win over prefixes.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == healthEndpoint.Path && method == healthEndpoint.Method {
		health := healthEndpoint
		return &health
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method && strings.Contains(configs[i].Path, "{") && matchPattern(configs[i].Path, path) {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}

// matchPattern reports whether path has the pattern's segments, a "{name}"
// segment matching any single non-empty segment
func matchPattern(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i, seg := range want {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}
