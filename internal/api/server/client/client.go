// Package client contains the completion providers the backend can route
// through: Ollama, OpenAI, Anthropic and a canned mock for running with no
// provider at all. Each implements agents.Completer.
package client

import (
	"net/http"
	"net/url"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is the role/content pair shared by the Ollama and OpenAI
// wire formats.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the shared HTTP plumbing for provider APIs.
type Client struct {
	base    *url.URL
	http    *http.Client
	chatURL *url.URL
}

// ClientConfig holds the configuration for a provider endpoint.
type ClientConfig struct {
	Scheme   string
	Host     string
	ChatPath string
}

// NewClient creates a provider client with a configurable base URL and
// chat endpoint.
func NewClient(config ClientConfig) *Client {
	baseURL := &url.URL{Scheme: config.Scheme, Host: config.Host}
	return &Client{
		base:    baseURL,
		http:    &http.Client{},
		chatURL: baseURL.ResolveReference(&url.URL{Path: config.ChatPath}),
	}
}

func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) ChatURL() string {
	return c.chatURL.String()
}
