//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, alg string, d time.Duration) *Service {
	t.Helper()
	s, err := NewService("test-secret", alg, d)
	require.NoError(t, err)
	return s
}

func TestGenerateAndValidate(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			s := newTestService(t, alg, 8*time.Hour)

			token, err := s.GenerateToken("admin", 1)
			require.NoError(t, err)

			claims, err := s.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Subject)
			assert.Equal(t, int64(1), claims.RestaurantID)
			assert.WithinDuration(t, claims.IssuedAt.Add(8*time.Hour), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestNewService_RejectsNonHMAC(t *testing.T) {
	for _, alg := range []string{"RS256", "none", "bogus", ""} {
		_, err := NewService("secret", alg, time.Hour)
		assert.ErrorIs(t, err, ErrUnsupportedAlg, alg)
	}
}

func TestValidateToken_Failures(t *testing.T) {
	s := newTestService(t, "HS256", time.Hour)

	t.Run("expired", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		s.now = func() time.Time { return past }
		token, err := s.GenerateToken("admin", 1)
		require.NoError(t, err)
		s.now = time.Now

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := newTestService(t, "HS256", time.Hour)
		other.secretKey = []byte("another-secret")
		token, err := other.GenerateToken("admin", 1)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algorithm mismatch", func(t *testing.T) {
		other := newTestService(t, "HS512", time.Hour)
		other.secretKey = s.secretKey
		token, err := other.GenerateToken("admin", 1)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing restaurant id", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString(s.secretKey)
		require.NoError(t, err)

		_, err = s.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrMissingTenantRef)
	})
}
