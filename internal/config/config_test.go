// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "Inventory API",
			Version:     "test",
			Environment: "development",
		},
		Server: ServerConfig{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{URL: "postgres://localhost/inventory"},
		Redis:    RedisConfig{URL: "redis://localhost:6379"},
		JWT: JWTConfig{
			Secret:            "0123456789abcdef0123456789abcdef",
			AccessTokenExpire: 24 * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowCredentials: true,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validate(validConfig()))
	})

	t.Run("missing jwt secret fails startup", func(t *testing.T) {
		c := validConfig()
		c.JWT.Secret = ""

		err := validate(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("short jwt secret fails startup", func(t *testing.T) {
		c := validConfig()
		c.JWT.Secret = "too-short"

		err := validate(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "32 bytes")
	})

	t.Run("missing database url fails", func(t *testing.T) {
		c := validConfig()
		c.Database.URL = ""
		assert.Error(t, validate(c))
	})

	t.Run("cors wildcard with credentials fails", func(t *testing.T) {
		c := validConfig()
		c.CORS.AllowedOrigins = []string{"*"}
		assert.Error(t, validate(c))
	})

	t.Run("insecure otel rejected in production", func(t *testing.T) {
		c := validConfig()
		c.App.Environment = "production"
		c.Otel.Enabled = true
		c.Otel.Insecure = true
		assert.Error(t, validate(c))
	})
}

func TestEnvironmentHelpers(t *testing.T) {
	c := validConfig()
	assert.False(t, c.IsProduction())
	assert.True(t, c.IsDevelopment())

	c.App.Environment = "production"
	assert.True(t, c.IsProduction())
	assert.False(t, c.IsDevelopment())
}

func TestEnvKeyReplacer(t *testing.T) {
	assert.Equal(t, "jwt.secret", envKeyReplacer("JWT_SECRET"))
	assert.Equal(t, "database.url", envKeyReplacer("DATABASE_URL"))

	// Unknown env vars map to nothing so they never pollute the tree.
	assert.Empty(t, envKeyReplacer("RANDOM_HOST_VAR"))
}
