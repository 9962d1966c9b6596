//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, username string, restaurantID int64) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	service, err := jwt.NewService(h.cfg.Secret, h.cfg.Algorithm, duration)
	require.NoError(t, err)
	token, err := service.GenerateToken(username, restaurantID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, username string, restaurantID int64) string {
	t.Helper()
	service, err := jwt.NewService(h.cfg.Secret, h.cfg.Algorithm, 1*time.Millisecond)
	require.NoError(t, err)
	token, err := service.GenerateToken(username, restaurantID)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}
