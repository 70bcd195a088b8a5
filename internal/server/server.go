package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

// multipartOverhead is allowed on top of MaxUploadBytes for form boundaries and fields
const multipartOverhead = 64 << 10

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	store          AnalysisStore
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	analysis       pipeline.Options
	maxUploadBytes int64
	validateOutput bool
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	// MaxUploadBytes caps a single résumé upload; zero means config.DefaultMaxUploadBytes
	MaxUploadBytes int64
	// Analysis is the base pipeline configuration; requests may override the target department
	Analysis pipeline.Options
	// ValidateOutput checks every envelope against the JSON schemas before storing it
	ValidateOutput bool
	// JWT enables bearer token authentication when non-nil
	JWT *config.JWTConfig
	// Store overrides the store selected from DatabaseURL
	Store AnalysisStore
	// RateLimit overrides the environment rate limit configuration
	RateLimit *ratelimit.Config
}

// New creates a new server instance. Analyses go to PostgreSQL when a
// database URL is configured and to process memory otherwise.
func New(cfg Config) (*Server, error) {
	store := cfg.Store
	if store == nil {
		if cfg.DatabaseURL != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			database, err := db.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := database.Migrate(ctx); err != nil {
				database.Close()
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
			store = database
		} else {
			log.Println("No database configured; analyses are kept in memory")
			store = NewMemoryStore()
		}
	}

	s := &Server{
		store:          store,
		analysis:       cfg.Analysis,
		maxUploadBytes: cfg.MaxUploadBytes,
		validateOutput: cfg.ValidateOutput,
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = config.DefaultMaxUploadBytes
	}

	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rateConfig)

	if cfg.JWT != nil {
		s.jwtService = NewJWTService(cfg.JWT)
	}

	port := cfg.Port
	if port == 0 {
		port = config.DefaultPort
	}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler wrapped in the server middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Analysis endpoints
	mux.Handle("POST /analyze", s.withAuth(s.handleAnalyze))
	mux.Handle("POST /analyze/text", s.withAuth(s.handleAnalyzeText))
	mux.Handle("POST /analyze/stream", s.withAuth(s.handleAnalyzeStream))

	// Stored analyses
	mux.Handle("GET /analyses", s.withAuth(s.handleListAnalyses))
	mux.Handle("GET /analyses/{id}", s.withAuth(s.handleGetAnalysis))
	mux.Handle("DELETE /analyses/{id}", s.withAuth(s.handleDeleteAnalysis))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	log.Println("Server stopped")
	return nil
}

// Close stops the rate limiter and releases the store
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.store != nil {
		s.store.Close()
	}
}

// withAuth requires a bearer token when JWT is configured
func (s *Server) withAuth(next http.HandlerFunc) http.Handler {
	if s.jwtService == nil {
		return next
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(next)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errorFromErr writes err with the status HTTPStatus assigns it. Internal errors are logged and masked.
func (s *Server) errorFromErr(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		retryAfter := int(info.RetryAfter.Seconds())
		response["retry_after"] = retryAfter
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d", info.Limit, info.Remaining)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
