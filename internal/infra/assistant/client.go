package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/pkg/errs"
)

var ErrUpstream = errs.New("assistant upstream request failed")

const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
	RunStatusCancelled = "cancelled"
	RunStatusExpired   = "expired"
)

// IsTerminal reports whether the run will not change status anymore.
func IsTerminal(status string) bool {
	switch status {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled, RunStatusExpired:
		return true
	default:
		return false
	}
}

// Client talks to an OpenAI-compatible Assistants v2 API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.AssistantConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type idResponse struct {
	ID string `json:"id"`
}

type runResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type messageList struct {
	Data []message `json:"data"`
}

type message struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type string `json:"type"`
	Text *struct {
		Value string `json:"value"`
	} `json:"text"`
}

func (c *Client) CreateThread(ctx context.Context) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/threads", nil, map[string]any{}, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) AddMessage(ctx context.Context, threadID, content string) error {
	body := map[string]any{"role": "user", "content": content}
	return c.do(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/messages", nil, body, nil)
}

func (c *Client) CreateRun(ctx context.Context, threadID, assistantID string) (string, error) {
	var out runResponse
	body := map[string]any{"assistant_id": assistantID}
	if err := c.do(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/runs", nil, body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) RunStatus(ctx context.Context, threadID, runID string) (string, error) {
	var out runResponse
	path := "/threads/" + url.PathEscape(threadID) + "/runs/" + url.PathEscape(runID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// LatestAssistantText scans the newest limit messages and returns the text parts
// of the first assistant message joined by a blank line, or "" if there is none.
func (c *Client) LatestAssistantText(ctx context.Context, threadID string, limit int) (string, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("order", "desc")

	var out messageList
	if err := c.do(ctx, http.MethodGet, "/threads/"+url.PathEscape(threadID)+"/messages", query, nil, &out); err != nil {
		return "", err
	}

	for _, msg := range out.Data {
		if msg.Role != "assistant" {
			continue
		}
		texts := make([]string, 0, len(msg.Content))
		for _, part := range msg.Content {
			if part.Type == "text" && part.Text != nil && part.Text.Value != "" {
				texts = append(texts, part.Text.Value)
			}
		}
		if len(texts) > 0 {
			return strings.Join(texts, "\n\n"), nil
		}
	}
	return "", nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode assistant request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errs.Wrap(err, "failed to build assistant request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("OpenAI-Beta", "assistants=v2")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, method+" "+path), ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Mark(
			fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet))),
			ErrUpstream,
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode assistant response"), ErrUpstream)
	}
	return nil
}
