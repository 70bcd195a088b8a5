package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
)

const testJWTSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	cfg := &config.JWTConfig{
		Secret:          testJWTSecret,
		ExpirationHours: expirationHours,
		Issuer:          config.DefaultJWTIssuer,
	}
	return NewJWTService(cfg)
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken("hr-portal")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Equal(t, 3, len(parts), "JWT should have 3 parts separated by dots")
}

func TestJWTService_GenerateToken_EmptySubject(t *testing.T) {
	service := setupTestJWTService(t, 24)

	_, err := service.GenerateToken("")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Success(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken("hr-portal")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "hr-portal", claims.Subject)
	assert.Equal(t, config.DefaultJWTIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token1, err := service.GenerateToken("cli")
	require.NoError(t, err)
	token2, err := service.GenerateToken("cli")
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)
}

func TestJWTService_ValidateToken_InvalidSignature(t *testing.T) {
	service1 := setupTestJWTService(t, 24)
	service2 := setupTestJWTService(t, 24)
	service2.config = &config.JWTConfig{
		Secret:          "different-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
		Issuer:          config.DefaultJWTIssuer,
	}

	token, err := service1.GenerateToken("cli")
	require.NoError(t, err)

	claims, err := service2.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "signature")
}

func TestJWTService_ValidateToken_WrongIssuer(t *testing.T) {
	issuer := setupTestJWTService(t, 24)
	issuer.config = &config.JWTConfig{Secret: testJWTSecret, ExpirationHours: 24, Issuer: "someone-else"}
	verifier := setupTestJWTService(t, 24)

	token, err := issuer.GenerateToken("cli")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issuer")
}

func TestJWTService_ValidateToken_MalformedToken(t *testing.T) {
	service := setupTestJWTService(t, 24)

	for _, token := range []string{"", "invalid", "invalid.token", "invalid.token.format.extra", "invalid.base64.signature"} {
		t.Run(token, func(t *testing.T) {
			claims, err := service.ValidateToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_TokenExpiration(t *testing.T) {
	service := setupTestJWTService(t, 1)
	issuedAt := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }

	token, err := service.GenerateToken("cli")
	require.NoError(t, err)

	service.now = func() time.Time { return issuedAt.Add(30 * time.Minute) }
	_, err = service.ValidateToken(token)
	require.NoError(t, err)

	service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	service := setupTestJWTService(t, 24)

	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "cli",
		Issuer:  config.DefaultJWTIssuer,
	}}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tokenString, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = service.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 24)
	token, err := service.GenerateToken("batch-job")
	require.NoError(t, err)

	claims, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "batch-job", subject)
}
