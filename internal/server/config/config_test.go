package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, DriverSQLite, c.StoreDriver)
	assert.Equal(t, "data/app.db", c.SQLitePath)
	assert.Equal(t, "data/badger", c.BadgerDir)
	assert.Equal(t, TokenSchemeLegacy, c.TokenScheme)
	assert.Equal(t, time.Duration(0), c.TokenValidityDuration)
	assert.Equal(t, "argon2id", c.PasswordScheme)
	assert.False(t, c.SeedDemoUser)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoad_NoSourcesGivesDefaults(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_grpc": ":6000",
		"store_driver":       "badger",
		"log_level":          "warn",
	})
	t.Setenv("PALACE_STORE_DRIVER", "memory")
	t.Setenv("PALACE_LOG_LEVEL", "debug")

	c, err := Load([]string{"-c", path, "-log-level", "error"})
	require.NoError(t, err)

	assert.Equal(t, ":6000", c.EndpointAddrGRPC, "json over defaults")
	assert.Equal(t, DriverMemory, c.StoreDriver, "env over json")
	assert.Equal(t, "error", c.LogLevel, "flags over env")
}

func TestLoad_EnvDurationAndBool(t *testing.T) {
	t.Setenv("PALACE_TOKEN_SCHEME", "jwt")
	t.Setenv("PALACE_SECRET_KEY", "k")
	t.Setenv("PALACE_TOKEN_VALIDITY", "2h")
	t.Setenv("PALACE_SEED_DEMO_USER", "true")

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, TokenSchemeJWT, c.TokenScheme)
	assert.Equal(t, 2*time.Hour, c.TokenValidityDuration)
	assert.True(t, c.SeedDemoUser)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("PALACE_TOKEN_VALIDITY", "soon")

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "mongo" }, wantErr: "unknown store driver"},
		{name: "jwt without secret", mutate: func(c *Config) { c.TokenScheme = TokenSchemeJWT }, wantErr: "requires a secret key"},
		{name: "jwt with secret", mutate: func(c *Config) { c.TokenScheme = TokenSchemeJWT; c.SecretKey = "k" }},
		{name: "unknown token scheme", mutate: func(c *Config) { c.TokenScheme = "paseto" }, wantErr: "unknown token scheme"},
		{name: "negative validity", mutate: func(c *Config) { c.TokenValidityDuration = -time.Second }, wantErr: "negative"},
		{name: "plain passwords", mutate: func(c *Config) { c.PasswordScheme = "plain" }},
		{name: "unknown password scheme", mutate: func(c *Config) { c.PasswordScheme = "md5" }, wantErr: "unknown password scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
