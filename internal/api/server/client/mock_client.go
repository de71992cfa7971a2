package client

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is a canned completer so the demo runs with no provider
// configured. Routing decisions come from keyword matching; replies echo
// the prompt.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	if strings.Contains(system, "supervisor") {
		return m.route(prompt), nil
	}
	return fmt.Sprintf("You said %q. I'm a mock agent; configure a provider for real answers.", prompt), nil
}

func (m *MockClient) route(prompt string) string {
	lower := strings.ToLower(prompt)
	switch {
	case containsAny(lower, "code", "program", "function", "bug", "python", "javascript", "go "):
		return "CODER"
	case containsAny(lower, "story", "poem", "write", "joke", "imagine", "song"):
		return "CREATIVE"
	default:
		return "SCIENTIST"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
