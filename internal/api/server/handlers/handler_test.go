package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bz888/agentchat/internal/agents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSupervisor struct {
	mock.Mock
}

func (m *MockSupervisor) Personas() []agents.Persona {
	args := m.Called()
	return args.Get(0).([]agents.Persona)
}

func (m *MockSupervisor) Respond(ctx context.Context, message string) (agents.Persona, string, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(agents.Persona), args.String(1), args.Error(2)
}

func postChat(t *testing.T, handler http.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	mockSupervisor := new(MockSupervisor)
	handler := NewHandler(mockSupervisor)

	scientist := agents.DefaultPersonas()[0]
	mockSupervisor.On("Respond", mock.Anything, "How does photosynthesis work?").
		Return(scientist, "🔬 Plants convert sunlight...", nil)

	body, _ := json.Marshal(ChatRequest{Message: "How does photosynthesis work?"})
	w := postChat(t, handler.ChatHandler, body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ChatResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "SCIENTIST", resp.AgentUsed)
	assert.Equal(t, "🔬 Plants convert sunlight...", resp.Response)

	mockSupervisor.AssertExpectations(t)
}

func TestChatHandlerTrimsMessage(t *testing.T) {
	mockSupervisor := new(MockSupervisor)
	handler := NewHandler(mockSupervisor)

	mockSupervisor.On("Respond", mock.Anything, "hi").
		Return(agents.DefaultPersonas()[0], "🔬 hello", nil)

	body, _ := json.Marshal(ChatRequest{Message: "  hi  \n"})
	w := postChat(t, handler.ChatHandler, body)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSupervisor.AssertExpectations(t)
}

func TestChatHandlerEmptyMessage(t *testing.T) {
	mockSupervisor := new(MockSupervisor)
	handler := NewHandler(mockSupervisor)

	body, _ := json.Marshal(ChatRequest{Message: "   "})
	w := postChat(t, handler.ChatHandler, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Message cannot be empty")
	mockSupervisor.AssertNotCalled(t, "Respond", mock.Anything, mock.Anything)
}

func TestChatHandlerInvalidJSON(t *testing.T) {
	handler := NewHandler(new(MockSupervisor))

	w := postChat(t, handler.ChatHandler, []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlerWrongMethod(t *testing.T) {
	handler := NewHandler(new(MockSupervisor))

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()
	handler.ChatHandler(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestChatHandlerSupervisorError(t *testing.T) {
	mockSupervisor := new(MockSupervisor)
	handler := NewHandler(mockSupervisor)

	mockSupervisor.On("Respond", mock.Anything, "hi").
		Return(agents.Persona{}, "", assert.AnError)

	body, _ := json.Marshal(ChatRequest{Message: "hi"})
	w := postChat(t, handler.ChatHandler, body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestChatHTMLHandler(t *testing.T) {
	mockSupervisor := new(MockSupervisor)
	handler := NewHandler(mockSupervisor)

	coder := agents.DefaultPersonas()[2]
	reply := "💻 Use a `for` loop:\n```python\nfor i in range(3):\n    print(i)\n```"
	mockSupervisor.On("Respond", mock.Anything, "How do I loop in Python?").
		Return(coder, reply, nil)

	body, _ := json.Marshal(ChatRequest{Message: "How do I loop in Python?"})
	req := httptest.NewRequest(http.MethodPost, "/chat/html", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.ChatHTMLHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	html := w.Body.String()
	assert.Contains(t, html, `<div class="message user">`)
	assert.Contains(t, html, "How do I loop in Python?")
	assert.Contains(t, html, "💻 CODER Agent")
	assert.Contains(t, html, "<code>for</code>")
	assert.Contains(t, html, "<pre><code>for i in range(3):\n    print(i)</code></pre>")
	assert.NotContains(t, html, "```")
}

func TestHealthHandler(t *testing.T) {
	handler := NewHandler(new(MockSupervisor))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.HealthHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestAgentsHandler(t *testing.T) {
	mockSupervisor := new(MockSupervisor)
	handler := NewHandler(mockSupervisor)

	mockSupervisor.On("Personas").Return(agents.DefaultPersonas())

	req := httptest.NewRequest(http.MethodGet, "/agents", nil)
	w := httptest.NewRecorder()
	handler.AgentsHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var infos []AgentInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "SCIENTIST", infos[0].Name)
	assert.Equal(t, "🔬", infos[0].Icon)
	assert.NotEmpty(t, infos[0].Description)
}
