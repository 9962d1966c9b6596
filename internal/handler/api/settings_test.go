//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"restaurant-crm/internal/domain/restaurant"
	"restaurant-crm/internal/handler/api"
	resdto "restaurant-crm/internal/handler/dto/response"
	"restaurant-crm/internal/usecase/commands"
	"restaurant-crm/internal/usecase/queries"
	"restaurant-crm/tests/common/builder"
	"restaurant-crm/tests/common/httptest"
	"restaurant-crm/tests/common/testutil"
	commandsmock "restaurant-crm/tests/mock/commands"
	queriesmock "restaurant-crm/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettingsCommands
	mockQueries  *queriesmock.MockSettingsQueries
	handler      *api.SettingsHandler
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	s.handler = api.NewSettingsHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/restaurants/:restaurant_id/settings", s.handler.Get)
	s.router.PUT("/restaurants/:restaurant_id/settings", s.handler.Put)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) TestGet() {
	url := "/restaurants/1/settings"

	s.Run("success: saved settings", func() {
		s.mockQueries.EXPECT().GetSettings(gomock.Any(), int64(1)).
			Return(builder.NewSettingsBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.RestaurantID)
		s.Equal("Anna", *response.HostChoice)
		s.Equal("Welcome!", *response.GreetingText)
	})

	s.Run("success: nothing saved renders explicit nulls", func() {
		s.mockQueries.EXPECT().GetSettings(gomock.Any(), int64(1)).
			Return(&queries.SettingsView{RestaurantID: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"restaurant_id":1,"host_choice":null,"greeting_text":null,"info_text":null}`, rec.Body.String())
	})

	s.Run("error: restaurant not found", func() {
		s.mockQueries.EXPECT().GetSettings(gomock.Any(), int64(999)).
			Return(nil, queries.ErrRestaurantNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/999/settings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Restaurant not found")
	})

	s.Run("error: invalid restaurant id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/x/settings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid restaurant id")
	})
}

func (s *SettingsHandlerTestSuite) TestPut() {
	url := "/restaurants/1/settings"
	b := builder.NewSettingsBuilder()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: returns saved settings", func() {
		s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), int64(1), reqBody.ToCommand()).
			DoAndReturn(func(_ any, id int64, req commands.UpdateSettingsRequest) (*restaurant.Settings, error) {
				return &restaurant.Settings{RestaurantID: id, HostChoice: req.HostChoice, GreetingText: req.GreetingText, InfoText: req.InfoText}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Open 12:00-23:00", *response.InfoText)
	})

	s.Run("success: omitted fields are sent as cleared", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("info_text", nil), testutil.Field("greeting_text", nil))
		s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), int64(1), commands.UpdateSettingsRequest{HostChoice: b.HostChoice}).
			Return(&restaurant.Settings{RestaurantID: 1, HostChoice: b.HostChoice}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"restaurant_id":1,"host_choice":"Anna","greeting_text":null,"info_text":null}`, rec.Body.String())
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, url, `{"host_choice": 5}`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "restaurant not found", commandsError: queries.ErrRestaurantNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Restaurant not found"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
