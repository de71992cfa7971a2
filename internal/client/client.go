// Package client drives one request/response cycle against the chat
// backend: it validates input, renders the user's message, holds the
// pending state while the call is in flight, and routes the reply (or the
// fixed failure line) back through the renderer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/bz888/agentchat/internal/logger"
	"github.com/bz888/agentchat/internal/render"
)

// ErrorText is the one line shown for any failed request, regardless of
// whether the transport, the status or the body was at fault.
const ErrorText = "⚠️ Could not reach the agent backend. Make sure the server is running and try again."

// Control is the input surface. The widget disables it while a request is
// outstanding, but the disabled state is a projection: the pending flag on
// the Client is what actually rejects re-entry.
type Control interface {
	Clear()
	SetDisabled(disabled bool)
	Focus()
}

// Indicator is the transient pending marker shown between dispatch and
// settle.
type Indicator interface {
	Show()
	Hide()
}

// ChatRequest is the wire request to the backend.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the wire response from the backend.
type ChatResponse struct {
	Response  string `json:"response"`
	AgentUsed string `json:"agent_used"`
}

// AgentInfo describes one backend persona, as listed by /agents.
type AgentInfo struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Client runs the conversation against one backend. All surfaces are
// injected so the cycle is testable without a terminal.
type Client struct {
	baseURL   string
	http      *http.Client
	renderer  *render.Renderer
	control   Control
	indicator Indicator
	pending   atomic.Bool

	localLogger *logger.Logger
}

func New(baseURL string, renderer *render.Renderer, control Control, indicator Indicator) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{},
		renderer:    renderer,
		control:     control,
		indicator:   indicator,
		localLogger: logger.NewLogger("conversation client"),
	}
}

// Pending reports whether a request is outstanding.
func (c *Client) Pending() bool {
	return c.pending.Load()
}

// Submit runs one cycle. Whitespace-only input is silently ignored, and a
// submission while a previous cycle is still in flight is a no-op: the
// pending flag is claimed before any side effect, so no second request can
// be dispatched even if the disabled control is bypassed.
func (c *Client) Submit(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if !c.pending.CompareAndSwap(false, true) {
		return
	}
	// Re-enabling must happen after every cycle, including a panicking
	// render.
	defer func() {
		c.indicator.Hide()
		c.control.SetDisabled(false)
		c.control.Focus()
		c.pending.Store(false)
	}()

	c.renderer.Render(render.ChatMessage{Text: text, Origin: render.OriginUser})
	c.control.Clear()
	c.control.SetDisabled(true)
	c.indicator.Show()

	resp, err := c.send(ctx, text)
	c.indicator.Hide()
	if err != nil {
		c.localLogger.Error("Chat request failed: ", err)
		c.renderer.Render(render.ChatMessage{Text: ErrorText, Origin: render.OriginAgent})
		return
	}
	c.renderer.Render(render.ChatMessage{
		Text:       resp.Response,
		Origin:     render.OriginAgent,
		AgentLabel: resp.AgentUsed,
	})
}

func (c *Client) send(ctx context.Context, text string) (*ChatResponse, error) {
	requestData, err := json.Marshal(ChatRequest{Message: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewBuffer(requestData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.New("unexpected status: " + resp.Status)
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// Health pings the backend's health endpoint. Advisory only: callers log
// the result, nothing is shown to the user and the conversation state is
// untouched.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("unexpected status: " + resp.Status)
	}
	return nil
}

// Agents fetches the backend's persona listing.
func (c *Client) Agents(ctx context.Context) ([]AgentInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/agents", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status: " + resp.Status)
	}

	var agents []AgentInfo
	if err := json.NewDecoder(resp.Body).Decode(&agents); err != nil {
		return nil, err
	}
	return agents, nil
}
