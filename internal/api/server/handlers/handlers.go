// Package handlers implements the backend's HTTP surface: the JSON chat
// endpoint the widgets post to, the server-rendered HTML fragment variant
// the browser widget consumes, and the health/agents side endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bz888/agentchat/internal/agents"
	"github.com/bz888/agentchat/internal/logger"
	"github.com/bz888/agentchat/internal/render"
)

// Supervisor is the routing engine behind /chat.
type Supervisor interface {
	Personas() []agents.Persona
	Respond(ctx context.Context, message string) (agents.Persona, string, error)
}

type Handler struct {
	supervisor Supervisor
}

func NewHandler(supervisor Supervisor) *Handler {
	return &Handler{supervisor: supervisor}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, message string) (ChatResponse, bool) {
	localLogger := logger.NewLogger("chat handler")

	persona, reply, err := h.supervisor.Respond(r.Context(), message)
	if err != nil {
		localLogger.Error("Agent failed: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return ChatResponse{}, false
	}

	localLogger.Info("Responded as ", persona.Name)
	return ChatResponse{Response: reply, AgentUsed: persona.Name}, true
}

func decodeChatRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}

	var clientReq ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&clientReq); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	defer r.Body.Close()

	message := strings.TrimSpace(clientReq.Message)
	if message == "" {
		http.Error(w, "Message cannot be empty", http.StatusBadRequest)
		return "", false
	}
	return message, true
}

// ChatHandler serves POST /chat.
func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	message, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}

	resp, ok := h.respond(w, r, message)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}

// ChatHTMLHandler serves POST /chat/html: the same cycle as /chat, but the
// reply comes back as a rendered transcript fragment (user message plus
// agent message) ready for the browser widget to insert.
func (h *Handler) ChatHTMLHandler(w http.ResponseWriter, r *http.Request) {
	message, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}

	resp, ok := h.respond(w, r, message)
	if !ok {
		return
	}

	markup := render.HTMLMarkup{}
	userHTML := render.FormatMessage(render.ChatMessage{Text: message, Origin: render.OriginUser}, markup)
	agentHTML := render.FormatMessage(render.ChatMessage{
		Text:       resp.Response,
		Origin:     render.OriginAgent,
		AgentLabel: resp.AgentUsed,
	}, markup)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<div class=\"message user\">%s</div>\n<div class=\"message agent\">%s</div>\n", userHTML, agentHTML)
}

// HealthHandler serves GET /health.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "healthy"})
}

// AgentsHandler serves GET /agents.
func (h *Handler) AgentsHandler(w http.ResponseWriter, r *http.Request) {
	personas := h.supervisor.Personas()
	infos := make([]AgentInfo, len(personas))
	for i, p := range personas {
		infos[i] = AgentInfo{Name: p.Name, Icon: p.Icon, Description: p.Description}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		http.Error(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}
