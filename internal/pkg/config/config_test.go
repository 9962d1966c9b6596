//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"restaurant-crm/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "admin")
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	// Setenv registers the restore, Unsetenv leaves it absent for the test.
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)
		unsetEnv(t, "SLOT_CACHE_TTL")
		unsetEnv(t, "TIME_SLOTS")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cfg.Cache.SlotTTL)
		assert.Len(t, cfg.Booking.TimeSlots, 11)
	})

	t.Run("custom slot cache TTL", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SLOT_CACHE_TTL", "90s")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, cfg.Cache.SlotTTL)
	})

	t.Run("error: non-positive slot cache TTL", func(t *testing.T) {
		for _, ttl := range []string{"0", "0s", "-1m"} {
			t.Run(ttl, func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("SLOT_CACHE_TTL", ttl)

				_, err := config.LoadConfig()
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SLOT_CACHE_TTL must be positive")
			})
		}
	})

	t.Run("error: empty time slots", func(t *testing.T) {
		setRequiredEnv(t)
		unsetEnv(t, "SLOT_CACHE_TTL")
		t.Setenv("TIME_SLOTS", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TIME_SLOTS must not be empty")
	})

	t.Run("error: missing required secret", func(t *testing.T) {
		setRequiredEnv(t)
		unsetEnv(t, "JWT_SECRET")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}
