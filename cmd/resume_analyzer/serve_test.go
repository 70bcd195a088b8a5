package main

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := config.Config{TargetDepartment: "Physics", ValidateOutput: true}
	cfg = cfg.MergeWithDefaults(config.Config{})

	srvCfg, err := serverConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, srvCfg.Port)
	assert.Equal(t, int64(config.DefaultMaxUploadBytes), srvCfg.MaxUploadBytes)
	assert.Empty(t, srvCfg.DatabaseURL)
	assert.True(t, srvCfg.ValidateOutput)
	assert.Equal(t, "Physics", srvCfg.Analysis.TargetDepartment)
	assert.Same(t, skills.DefaultCatalog(), srvCfg.Analysis.Catalog)
	assert.Nil(t, srvCfg.JWT, "authentication is off without JWT_SECRET")
}

func TestServerConfig_WithJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	srvCfg, err := serverConfig(config.Config{Port: 9090})

	require.NoError(t, err)
	assert.Equal(t, 9090, srvCfg.Port)
	require.NotNil(t, srvCfg.JWT)
	assert.Equal(t, 24, srvCfg.JWT.ExpirationHours)
}

func TestServerConfig_InvalidJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")

	_, err := serverConfig(config.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load JWT config")
}
