package server

import (
	"net/http"

	"github.com/bz888/agentchat/internal/api/server/handlers"
)

func registerRoutes(mux *http.ServeMux, handler *handlers.Handler) {
	mux.HandleFunc("/", handler.IndexHandler)
	mux.HandleFunc("/chat", handler.ChatHandler)
	mux.HandleFunc("/chat/html", handler.ChatHTMLHandler)
	mux.HandleFunc("/agents", handler.AgentsHandler)
	mux.HandleFunc("/health", handler.HealthHandler)
}
