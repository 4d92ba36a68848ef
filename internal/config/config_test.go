package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newViper(values map[string]string) *viper.Viper {
	v := viper.New()
	v.SetDefault("GRAPHQL_ENDPOINT", "http://backend/graphql")
	v.SetDefault("JWT_SECRET", "secret")
	v.SetDefault("TIMEZONE", "Asia/Seoul")
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper(t *testing.T) {
	t.Run("defaults and durations", func(t *testing.T) {
		cfg, err := fromViper(newViper(map[string]string{
			"GRAPHQL_TIMEOUT": "5s",
			"JWT_EXPIRY":      "not-a-duration",
		}))
		assert.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.GraphQLTimeout)
		assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
		assert.Equal(t, "Asia/Seoul", cfg.Location.String())
		assert.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	})

	t.Run("production enables secure cookies", func(t *testing.T) {
		cfg, err := fromViper(newViper(map[string]string{"APP_ENV": "production"}))
		assert.NoError(t, err)
		assert.True(t, cfg.SecureCookies)

		cfg, err = fromViper(newViper(nil))
		assert.NoError(t, err)
		assert.False(t, cfg.SecureCookies)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := fromViper(newViper(map[string]string{"JWT_SECRET": ""}))
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("bad timezone", func(t *testing.T) {
		_, err := fromViper(newViper(map[string]string{"TIMEZONE": "Mars/Olympus"}))
		assert.ErrorContains(t, err, "TIMEZONE")
	})
}
