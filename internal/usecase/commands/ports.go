package commands

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// AssistantGateway is the remote conversational-assistant API.
type AssistantGateway interface {
	Configured() bool
	CreateThread(ctx context.Context) (string, error)
	AddMessage(ctx context.Context, threadID, content string) error
	CreateRun(ctx context.Context, threadID, assistantID string) (string, error)
	RunStatus(ctx context.Context, threadID, runID string) (string, error)
	LatestAssistantText(ctx context.Context, threadID string, limit int) (string, error)
}
