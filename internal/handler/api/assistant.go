package api

import (
	"net/http"

	reqdto "restaurant-crm/internal/handler/dto/request"
	resdto "restaurant-crm/internal/handler/dto/response"
	"restaurant-crm/internal/handler/httperr"
	"restaurant-crm/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	cmds commands.AssistantCommands
}

func NewAssistantHandler(cmds commands.AssistantCommands) *AssistantHandler {
	return &AssistantHandler{cmds: cmds}
}

// @Summary Assistant chat
// @Description Send a message to the assistant and wait for its reply
// @Tags assistants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AssistantChatRequest true "Chat request"
// @Success 200 {object} resdto.AssistantChatResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /assistants/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req reqdto.AssistantChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Chat(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AssistantChatResponse{
		ThreadID:         result.ThreadID,
		AssistantMessage: result.AssistantMessage,
	})
}

// @Summary Assistant chat stream
// @Description Server-sent events: thread_id, delta frames, optional error, then done
// @Tags assistants
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param request body reqdto.AssistantChatRequest true "Chat request"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /assistants/chat_stream [post]
func (h *AssistantHandler) ChatStream(c *gin.Context) {
	var req reqdto.AssistantChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	started := false
	emit := func(ev commands.StreamEvent) error {
		if !started {
			started = true
			c.Header("Content-Type", "text/event-stream")
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Header("X-Accel-Buffering", "no")
			c.Status(http.StatusOK)
		}
		c.SSEvent("", resdto.FromStreamEvent(ev))
		c.Writer.Flush()
		return c.Request.Context().Err()
	}

	if err := h.cmds.ChatStream(c.Request.Context(), req.ToCommand(), emit); err != nil && !started {
		abortWithUseCaseError(c, err)
	}
}
