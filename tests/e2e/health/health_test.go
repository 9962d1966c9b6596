//go:build e2e

package health_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"restaurant-crm/tests/common/httptest"
	"restaurant-crm/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type healthSuite struct {
	e2e.SharedSuite
}

func TestHealthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(healthSuite))
}

func (s *healthSuite) TestHealth() {
	s.Run("認証なしでヘルスチェックできる", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	s.Run("フロントエンドからのプリフライトが許可される", func() {
		t := s.T()

		req := stdhttptest.NewRequest(http.MethodOptions, "/bookings", nil)
		req.Header.Set("Origin", s.Config.CORS.FrontendOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := stdhttptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, s.Config.CORS.FrontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
