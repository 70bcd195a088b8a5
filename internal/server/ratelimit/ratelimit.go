// Package ratelimit provides per-client request limiting using token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// Clock returns the current time
type Clock func() time.Time

// bucketIdleTTL is how long an unused bucket survives cleanup
const bucketIdleTTL = time.Hour

// tokenBucket allows capacity requests at once and refills at refillRate tokens per second.
type tokenBucket struct {
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

// refill must be called with mu held
func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	if elapsed > 0 {
		tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
		tb.lastRefill = now
	}
}

// take consumes a token if one is available and reports the state afterwards.
func (tb *tokenBucket) take(now time.Time) (allowed bool, remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill(now)
	tb.lastAccess = now
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		allowed = true
	}

	remaining = int(tb.tokens)
	resetTime = now
	if missing := float64(tb.capacity) - tb.tokens; missing > 0 {
		resetTime = now.Add(time.Duration(missing / tb.refillRate * float64(time.Second)))
	}
	return allowed, remaining, resetTime
}

func (tb *tokenBucket) idleSince(cutoff time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.lastAccess.Before(cutoff)
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
	// Clock defaults to time.Now
	Clock Clock
}

// Limiter manages rate limiting for multiple clients using token buckets.
type Limiter struct {
	buckets       map[string]*tokenBucket
	mu            sync.Mutex
	config        *Config
	now           Clock
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    DefaultLimit,
			DefaultWindow:   time.Minute,
			CleanupInterval: defaultCleanupPeriod,
		}
	}

	limiter := &Limiter{
		buckets: make(map[string]*tokenBucket),
		config:  config,
		now:     config.Clock,
	}
	if limiter.now == nil {
		limiter.now = time.Now
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Paths sharing an endpoint configuration share a bucket.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	endpoint := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if endpoint == nil {
		endpoint = &EndpointConfig{
			Path:   path,
			Method: method,
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (e.g., health check)
	if endpoint.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	bucket := l.getBucket(clientID+":"+method+":"+endpoint.Path, endpoint, now)
	allowed, remaining, resetTime := bucket.take(now)

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(resetTime.Sub(now), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpoint.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(key string, endpoint *EndpointConfig, now time.Time) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if bucket, ok := l.buckets[key]; ok {
		return bucket
	}

	capacity := endpoint.Burst
	if capacity <= 0 {
		capacity = endpoint.Limit
	}
	bucket := newTokenBucket(capacity, float64(endpoint.Limit)/endpoint.Window.Seconds(), now)
	l.buckets[key] = bucket
	return bucket
}

func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets drops buckets idle for longer than bucketIdleTTL
func (l *Limiter) cleanupBuckets() {
	cutoff := l.now().Add(-bucketIdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, bucket := range l.buckets {
		if bucket.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

func (l *Limiter) bucketCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
