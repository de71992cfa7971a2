package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bz888/agentchat/internal/logger"
)

// OllamaClient talks to a local Ollama server.
type OllamaClient struct {
	Client
	model string
}

// NewOllamaClient creates an Ollama completer against host (host:port,
// no scheme).
func NewOllamaClient(host, model string) *OllamaClient {
	return &OllamaClient{
		Client: *NewClient(ClientConfig{
			Scheme:   "http",
			Host:     host,
			ChatPath: "/api/chat",
		}),
		model: model,
	}
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type ollamaChatResponse struct {
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// Available reports whether the Ollama server answers on its base URL.
func (c *OllamaClient) Available() bool {
	localLogger := logger.NewLogger("ollama client")

	resp, err := c.http.Get(c.BaseURL())
	if err != nil {
		localLogger.Warn("Ollama server not available: ", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Complete performs one non-streaming chat call.
func (c *OllamaClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	data := ollamaChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: prompt},
		},
		Stream: false,
	}

	bts, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ChatURL(), bytes.NewBuffer(bts))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("ollama: unexpected status: " + resp.Status)
	}

	var apiResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", err
	}
	return apiResp.Message.Content, nil
}
