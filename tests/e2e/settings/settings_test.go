//go:build e2e

package settings_test

import (
	"net/http"
	"testing"

	resdto "restaurant-crm/internal/handler/dto/response"
	"restaurant-crm/tests/common/authtest"
	"restaurant-crm/tests/common/builder"
	"restaurant-crm/tests/common/httptest"
	"restaurant-crm/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const settingsURL = "/restaurants/1/settings"

type settingsSuite struct {
	e2e.SharedSuite
	token string
}

func TestSettingsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(settingsSuite))
}

func (s *settingsSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.Login(s.T(), s.Router, s.Config.Admin.Username, s.Config.Admin.Password)
}

func (s *settingsSuite) TestSettings() {
	s.Run("未保存の設定はnullで返る", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, settingsURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"restaurant_id":1,"host_choice":null,"greeting_text":null,"info_text":null}`, w.Body.String())
	})

	s.Run("保存した設定が取得できる", func() {
		t := s.T()

		reqBody := builder.NewSettingsBuilder().BuildUpdateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, settingsURL, reqBody, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, settingsURL, nil, s.token)
		var res resdto.SettingsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, *reqBody.HostChoice, *res.HostChoice)
		require.Equal(t, *reqBody.GreetingText, *res.GreetingText)
		require.Equal(t, *reqBody.InfoText, *res.InfoText)
	})

	s.Run("PUTは全項目を置き換える", func() {
		t := s.T()

		full := builder.NewSettingsBuilder().BuildUpdateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, settingsURL, full, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		// host_choice だけ送ると他の項目はクリアされる
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, settingsURL, map[string]any{"host_choice": "Boris"}, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, settingsURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"restaurant_id":1,"host_choice":"Boris","greeting_text":null,"info_text":null}`, w.Body.String())
	})

	s.Run("存在しないレストラン", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/restaurants/999/settings", nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Restaurant not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/restaurants/999/settings", map[string]any{}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Restaurant not found")
	})
}
