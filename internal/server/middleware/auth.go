// Package middleware provides HTTP middleware for API token authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// subjectKey is the context key for the authenticated token subject.
const subjectKey ContextKey = "subject"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (SubjectGetter, error)
}

// SubjectGetter exposes the client a token was issued to.
type SubjectGetter interface {
	GetSubject() (string, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				unauthorized(w)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken parses "Bearer <token>", matching the scheme case-insensitively
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="resume-analyzer"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// GetSubject extracts the authenticated token subject from the request context.
func GetSubject(r *http.Request) (string, error) {
	subject, ok := r.Context().Value(subjectKey).(string)
	if !ok {
		return "", fmt.Errorf("token subject not found in request context")
	}
	return subject, nil
}

// WithSubject returns a copy of ctx carrying subject, as AuthMiddleware does.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}
