package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/analyze", Method: "POST", Limit: 1, Window: time.Minute},
		{Path: "/analyze/text", Method: "POST", Limit: 2, Window: time.Minute},
		{Path: "/analyses/{id}", Method: "DELETE", Limit: 3, Window: time.Minute},
		{Path: "/analyses/", Method: "GET", Limit: 4, Window: time.Minute},
		{Path: "/analyses/{id}", Method: "GET", Limit: 5, Window: time.Minute},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{name: "exact", path: "/analyze", method: "POST", wantLimit: 1},
		{name: "exact longer path", path: "/analyze/text", method: "POST", wantLimit: 2},
		{name: "wildcard", path: "/analyses/123", method: "DELETE", wantLimit: 3},
		{name: "wildcard needs a segment", path: "/analyses/", method: "DELETE", wantNil: true},
		{name: "wildcard rejects extra segments", path: "/analyses/1/2", method: "DELETE", wantNil: true},
		{name: "wildcard beats prefix", path: "/analyses/123", method: "GET", wantLimit: 5},
		{name: "prefix", path: "/analyses/1/2", method: "GET", wantLimit: 4},
		{name: "method mismatch", path: "/analyze", method: "GET", wantNil: true},
		{name: "no match", path: "/unknown", method: "POST", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected no match, got %s %s", got.Method, got.Path)
				}
				return
			}
			if got == nil {
				t.Fatal("Expected a match, got nil")
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Expected limit %d, got %d (%s)", tt.wantLimit, got.Limit, got.Path)
			}
		})
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if got == nil {
		t.Fatal("Expected /health to match")
	}
	if got.Limit != 0 {
		t.Errorf("Expected unlimited health check, got limit %d", got.Limit)
	}

	got.Limit = 10
	if again := MatchEndpoint("/health", "GET", nil); again.Limit != 0 {
		t.Error("Expected each health match to be a fresh copy")
	}
}
