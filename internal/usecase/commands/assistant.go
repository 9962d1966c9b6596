package commands

import (
	"context"
	"time"

	"restaurant-crm/internal/infra/assistant"
	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/pkg/errs"
)

//go:generate mockgen -source=assistant.go -destination=../../../tests/mock/commands/assistant.go -package=commandsmock

var (
	ErrAssistantNotConfigured = errs.New("OPENAI_API_KEY not configured")
	ErrAssistantRunFailed     = errs.New("assistant run did not complete")
	ErrAssistantTimeout       = errs.New("assistant run timeout")
	ErrAssistantUpstream      = errs.New("assistant request failed")
)

const (
	chatHistoryLimit   = 10
	streamHistoryLimit = 1
)

type ChatRequest struct {
	AssistantID string
	Message     string
	ThreadID    string
}

type ChatResult struct {
	ThreadID         string
	AssistantMessage string
}

// StreamEvent is one server-pushed frame; exactly one field group is set.
type StreamEvent struct {
	ThreadID string
	Delta    string
	Error    string
	Done     bool
}

type AssistantCommands interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResult, error)
	// ChatStream fails only when nothing was emitted yet; later failures become error events.
	ChatStream(ctx context.Context, req ChatRequest, emit func(StreamEvent) error) error
}

type assistantUseCaseImpl struct {
	gateway      AssistantGateway
	runTimeout   time.Duration
	pollInterval time.Duration
}

func NewAssistantUseCase(gateway AssistantGateway, cfg config.Config) AssistantCommands {
	return &assistantUseCaseImpl{
		gateway:      gateway,
		runTimeout:   cfg.Assistant.RunTimeout,
		pollInterval: cfg.Assistant.PollInterval,
	}
}

func (uc *assistantUseCaseImpl) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if !uc.gateway.Configured() {
		return nil, ErrAssistantNotConfigured
	}

	threadID, runID, err := uc.startRun(ctx, req)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(uc.runTimeout)
	for {
		status, err := uc.gateway.RunStatus(ctx, threadID, runID)
		if err != nil {
			return nil, errs.Mark(err, ErrAssistantUpstream)
		}
		if assistant.IsTerminal(status) {
			if status != assistant.RunStatusCompleted {
				return nil, errs.Mark(errs.New("assistant run status: "+status), ErrAssistantRunFailed)
			}
			break
		}
		if !time.Now().Add(uc.pollInterval).Before(deadline) {
			return nil, ErrAssistantTimeout
		}
		if err := uc.wait(ctx); err != nil {
			return nil, err
		}
	}

	answer, err := uc.gateway.LatestAssistantText(ctx, threadID, chatHistoryLimit)
	if err != nil {
		return nil, errs.Mark(err, ErrAssistantUpstream)
	}
	return &ChatResult{ThreadID: threadID, AssistantMessage: answer}, nil
}

func (uc *assistantUseCaseImpl) ChatStream(ctx context.Context, req ChatRequest, emit func(StreamEvent) error) error {
	if !uc.gateway.Configured() {
		return ErrAssistantNotConfigured
	}

	threadID := req.ThreadID
	streamErr := uc.stream(ctx, req, &threadID, emit)
	if streamErr != nil && ctx.Err() == nil {
		if err := emit(StreamEvent{Error: streamErr.Error()}); err != nil {
			return err
		}
	}
	return emit(StreamEvent{Done: true, ThreadID: threadID})
}

func (uc *assistantUseCaseImpl) stream(ctx context.Context, req ChatRequest, threadID *string, emit func(StreamEvent) error) error {
	if *threadID == "" {
		id, err := uc.gateway.CreateThread(ctx)
		if err != nil {
			return err
		}
		*threadID = id
	}
	if err := emit(StreamEvent{ThreadID: *threadID}); err != nil {
		return err
	}

	if err := uc.gateway.AddMessage(ctx, *threadID, req.Message); err != nil {
		return err
	}
	runID, err := uc.gateway.CreateRun(ctx, *threadID, req.AssistantID)
	if err != nil {
		return err
	}

	deadline := time.Now().Add(uc.runTimeout)
	accumulated := ""
	for {
		status, err := uc.gateway.RunStatus(ctx, *threadID, runID)
		if err != nil {
			return err
		}

		latest, err := uc.gateway.LatestAssistantText(ctx, *threadID, streamHistoryLimit)
		if err != nil {
			return err
		}
		if len(latest) > len(accumulated) {
			delta := latest[len(accumulated):]
			accumulated = latest
			if err := emit(StreamEvent{Delta: delta}); err != nil {
				return err
			}
		}

		if assistant.IsTerminal(status) {
			if status != assistant.RunStatusCompleted {
				return errs.New(status)
			}
			return nil
		}
		if !time.Now().Add(uc.pollInterval).Before(deadline) {
			return ErrAssistantTimeout
		}
		if err := uc.wait(ctx); err != nil {
			return err
		}
	}
}

func (uc *assistantUseCaseImpl) startRun(ctx context.Context, req ChatRequest) (string, string, error) {
	threadID := req.ThreadID
	if threadID == "" {
		id, err := uc.gateway.CreateThread(ctx)
		if err != nil {
			return "", "", errs.Mark(err, ErrAssistantUpstream)
		}
		threadID = id
	}

	if err := uc.gateway.AddMessage(ctx, threadID, req.Message); err != nil {
		return "", "", errs.Mark(err, ErrAssistantUpstream)
	}

	runID, err := uc.gateway.CreateRun(ctx, threadID, req.AssistantID)
	if err != nil {
		return "", "", errs.Mark(err, ErrAssistantUpstream)
	}
	return threadID, runID, nil
}

func (uc *assistantUseCaseImpl) wait(ctx context.Context) error {
	timer := time.NewTimer(uc.pollInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
