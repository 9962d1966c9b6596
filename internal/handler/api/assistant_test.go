//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"restaurant-crm/internal/handler/api"
	reqdto "restaurant-crm/internal/handler/dto/request"
	resdto "restaurant-crm/internal/handler/dto/response"
	"restaurant-crm/internal/pkg/errs"
	"restaurant-crm/internal/usecase/commands"
	"restaurant-crm/tests/common/httptest"
	commandsmock "restaurant-crm/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssistantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAssistantCommands
	handler      *api.AssistantHandler
}

func (s *AssistantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAssistantCommands(s.mockCtrl)
	s.handler = api.NewAssistantHandler(s.mockCommands)

	s.router.POST("/assistants/chat", s.handler.Chat)
	s.router.POST("/assistants/chat_stream", s.handler.ChatStream)
}

func (s *AssistantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssistantHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssistantHandlerTestSuite))
}

func chatRequest() reqdto.AssistantChatRequest {
	return reqdto.AssistantChatRequest{AssistantID: "asst_1", Message: "Any tables tonight?"}
}

func (s *AssistantHandlerTestSuite) TestChat() {
	url := "/assistants/chat"

	s.Run("success: returns thread and assistant message", func() {
		threadID := "thread_1"
		req := chatRequest()
		req.ThreadID = &threadID
		s.mockCommands.EXPECT().Chat(gomock.Any(), commands.ChatRequest{AssistantID: "asst_1", Message: "Any tables tonight?", ThreadID: "thread_1"}).
			Return(&commands.ChatResult{ThreadID: "thread_1", AssistantMessage: "Yes."}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var response resdto.AssistantChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.AssistantChatResponse{ThreadID: "thread_1", AssistantMessage: "Yes."}, response)
	})

	s.Run("error: missing message", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"assistant_id": "asst_1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not configured", commandsError: commands.ErrAssistantNotConfigured, expectedStatus: http.StatusInternalServerError, expectedMsg: "OPENAI_API_KEY not configured"},
			{name: "timeout", commandsError: commands.ErrAssistantTimeout, expectedStatus: http.StatusGatewayTimeout, expectedMsg: "Assistant run timeout"},
			{name: "run failed", commandsError: errs.Mark(errs.New("assistant run status: failed"), commands.ErrAssistantRunFailed), expectedStatus: http.StatusInternalServerError, expectedMsg: "assistant run status: failed"},
			{name: "upstream", commandsError: errs.Mark(errs.New("502"), commands.ErrAssistantUpstream), expectedStatus: http.StatusInternalServerError, expectedMsg: "Assistant request failed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, chatRequest(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AssistantHandlerTestSuite) TestChatStream() {
	url := "/assistants/chat_stream"

	s.Run("success: frames are written as SSE data lines", func() {
		s.mockCommands.EXPECT().ChatStream(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.ChatRequest, emit func(commands.StreamEvent) error) error {
				for _, ev := range []commands.StreamEvent{
					{ThreadID: "thread_1"},
					{Delta: "Hel"},
					{Delta: "lo"},
					{Done: true, ThreadID: "thread_1"},
				} {
					if err := emit(ev); err != nil {
						return err
					}
				}
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, chatRequest(), "")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":  "text/event-stream",
			"Cache-Control": "no-cache",
		})
		frames := httptest.DecodeSSEFrames(s.T(), rec.Body.String())
		s.Equal([]map[string]any{
			{"thread_id": "thread_1"},
			{"delta": "Hel"},
			{"delta": "lo"},
			{"done": true, "thread_id": "thread_1"},
		}, frames)
	})

	s.Run("success: error frame precedes done", func() {
		s.mockCommands.EXPECT().ChatStream(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.ChatRequest, emit func(commands.StreamEvent) error) error {
				_ = emit(commands.StreamEvent{ThreadID: "thread_1"})
				_ = emit(commands.StreamEvent{Error: "failed"})
				return emit(commands.StreamEvent{Done: true, ThreadID: "thread_1"})
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, chatRequest(), "")

		frames := httptest.DecodeSSEFrames(s.T(), rec.Body.String())
		s.Len(frames, 3)
		s.Equal("failed", frames[1]["error"])
		s.Equal(true, frames[2]["done"])
	})

	s.Run("error: not configured is a plain JSON error", func() {
		s.mockCommands.EXPECT().ChatStream(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrAssistantNotConfigured).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, chatRequest(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "OPENAI_API_KEY not configured")
		s.Contains(rec.Header().Get("Content-Type"), "application/json")
	})

	s.Run("error: invalid body", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `not json`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
