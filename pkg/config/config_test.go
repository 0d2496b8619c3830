package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	resetViper(t)
	setDefaults()

	assert.Equal(t, "0.0.0.0", GetString("server.host"))
	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "memory", GetString("database.driver"))
	assert.Equal(t, "./data/podcasts.csv", GetString("catalogue.podcasts_file"))
	assert.Equal(t, 24*time.Hour, GetDuration("auth.token_ttl"))
	assert.True(t, GetBool("rate_limiting.enabled"))
	assert.Equal(t, "info", GetString("logging.level"))
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		resetViper(t)
		setDefaults()
		assert.NoError(t, validate())
	})

	t.Run("rejects bad port", func(t *testing.T) {
		resetViper(t)
		setDefaults()
		viper.Set("server.port", 0)
		assert.Error(t, validate())
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		resetViper(t)
		setDefaults()
		viper.Set("database.driver", "postgres")
		assert.Error(t, validate())
	})

	t.Run("sqlite driver needs a path", func(t *testing.T) {
		resetViper(t)
		setDefaults()
		viper.Set("database.driver", "sqlite")
		viper.Set("database.path", "")
		assert.Error(t, validate())
	})

	t.Run("rejects placeholder secret in production", func(t *testing.T) {
		resetViper(t)
		setDefaults()
		viper.Set("environment", "production")
		assert.Error(t, validate())
	})

	t.Run("corrects out-of-range bcrypt cost", func(t *testing.T) {
		resetViper(t)
		setDefaults()
		viper.Set("auth.bcrypt_cost", 99)
		require.NoError(t, validate())
		assert.Equal(t, bcrypt.DefaultCost, GetInt("auth.bcrypt_cost"))
	})

	t.Run("corrects non-positive rate limits", func(t *testing.T) {
		resetViper(t)
		setDefaults()
		viper.Set("rate_limiting.requests_per_second", -1)
		viper.Set("rate_limiting.burst", 0)
		require.NoError(t, validate())
		assert.Equal(t, 10.0, viper.GetFloat64("rate_limiting.requests_per_second"))
		assert.Equal(t, 20, GetInt("rate_limiting.burst"))
	})
}

func TestGetConfig(t *testing.T) {
	resetViper(t)
	setDefaults()
	viper.Set("database.driver", "sqlite")
	viper.Set("database.path", ":memory:")
	viper.Set("auth.jwt_secret", "unit-test-secret")

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "unit-test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid memory config",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "memory"},
				Auth:     AuthConfig{BcryptCost: bcrypt.DefaultCost},
			},
		},
		{
			name: "valid sqlite config",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "sqlite", Path: "./test.db"},
				Auth:     AuthConfig{BcryptCost: bcrypt.DefaultCost},
			},
		},
		{
			name: "invalid port",
			config: &Config{
				Server:   ServerConfig{Port: 70000},
				Database: DatabaseConfig{Driver: "memory"},
			},
			wantErr: true,
		},
		{
			name: "sqlite without path",
			config: &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "sqlite"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
