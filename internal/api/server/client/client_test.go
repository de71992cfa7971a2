package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientURLs(t *testing.T) {
	c := NewClient(ClientConfig{Scheme: "http", Host: "localhost:11434", ChatPath: "/api/chat"})

	assert.Equal(t, "http://localhost:11434", c.BaseURL())
	assert.Equal(t, "http://localhost:11434/api/chat", c.ChatURL())
}

func TestOllamaComplete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)

		var req ollamaChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3:latest", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, RoleSystem, req.Messages[0].Role)
		assert.Equal(t, "You are a test.", req.Messages[0].Content)
		assert.Equal(t, RoleUser, req.Messages[1].Role)
		assert.Equal(t, "hello", req.Messages[1].Content)

		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ChatMessage{Role: RoleAssistant, Content: "hi there"},
			Done:    true,
		})
	}))
	defer ts.Close()

	c := NewOllamaClient(strings.TrimPrefix(ts.URL, "http://"), "llama3:latest")
	out, err := c.Complete(context.Background(), "You are a test.", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestOllamaCompleteBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewOllamaClient(strings.TrimPrefix(ts.URL, "http://"), "nope")
	_, err := c.Complete(context.Background(), "system", "hello")
	assert.Error(t, err)
}

func TestOllamaAvailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewOllamaClient(strings.TrimPrefix(ts.URL, "http://"), "llama3:latest")
	assert.True(t, c.Available())

	ts.Close()
	assert.False(t, c.Available())
}

func TestMockClientRouting(t *testing.T) {
	m := NewMockClient()
	supervisor := "You are a supervisor managing a team of specialists."

	decision, err := m.Complete(context.Background(), supervisor, "How do I fix this bug in my python code?")
	require.NoError(t, err)
	assert.Equal(t, "CODER", decision)

	decision, err = m.Complete(context.Background(), supervisor, "Write me a short poem about the moon")
	require.NoError(t, err)
	assert.Equal(t, "CREATIVE", decision)

	decision, err = m.Complete(context.Background(), supervisor, "How does photosynthesis work?")
	require.NoError(t, err)
	assert.Equal(t, "SCIENTIST", decision)
}

func TestMockClientReplyEchoesPrompt(t *testing.T) {
	m := NewMockClient()

	reply, err := m.Complete(context.Background(), "You are a brilliant scientist.", "Explain gravity")
	require.NoError(t, err)
	assert.Contains(t, reply, `"Explain gravity"`)
}
