package response

import "restaurant-crm/internal/usecase/commands"

type AssistantChatResponse struct {
	ThreadID         string `json:"thread_id"`
	AssistantMessage string `json:"assistant_message"`
}

// StreamFrame is serialized as one SSE data line; unset fields are omitted.
type StreamFrame struct {
	ThreadID string `json:"thread_id,omitempty"`
	Delta    string `json:"delta,omitempty"`
	Error    string `json:"error,omitempty"`
	Done     bool   `json:"done,omitempty"`
}

func FromStreamEvent(ev commands.StreamEvent) StreamFrame {
	return StreamFrame{
		ThreadID: ev.ThreadID,
		Delta:    ev.Delta,
		Error:    ev.Error,
		Done:     ev.Done,
	}
}
