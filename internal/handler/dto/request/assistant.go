package request

import "restaurant-crm/internal/usecase/commands"

type AssistantChatRequest struct {
	AssistantID string  `json:"assistant_id" binding:"required"`
	Message     string  `json:"message" binding:"required"`
	ThreadID    *string `json:"thread_id"`
}

func (r *AssistantChatRequest) ToCommand() commands.ChatRequest {
	req := commands.ChatRequest{
		AssistantID: r.AssistantID,
		Message:     r.Message,
	}
	if r.ThreadID != nil {
		req.ThreadID = *r.ThreadID
	}
	return req
}
