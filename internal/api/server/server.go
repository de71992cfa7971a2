// Package server runs the supervisor backend: persona routing over a
// configured completion provider, exposed on the HTTP surface the widgets
// talk to.
package server

import (
	"net/http"

	"github.com/bz888/agentchat/internal/agents"
	"github.com/bz888/agentchat/internal/api/server/client"
	"github.com/bz888/agentchat/internal/api/server/handlers"
	"github.com/bz888/agentchat/internal/config"
	"github.com/bz888/agentchat/internal/logger"
)

var localLogger *logger.Logger

func Init() {
	localLogger = logger.NewLogger("server")
}

// Run builds the provider, the supervisor and the routes, then serves
// until the listener fails.
func Run(cfg *config.Config) error {
	personas, err := agents.LoadPersonas(cfg.PersonasPath)
	if err != nil {
		return err
	}

	completer := initCompleter(cfg)
	supervisor := agents.NewSupervisor(completer, personas)
	handler := handlers.NewHandler(supervisor)

	mux := http.NewServeMux()
	registerRoutes(mux, handler)

	address := ":" + cfg.Port
	localLogger.Info("Server started on http://localhost" + address + "/")
	return http.ListenAndServe(address, chainMiddlewares(mux, withRequestID, withLogging, withCORS))
}

// initCompleter picks the completion provider. "auto" takes the first
// available of Anthropic, OpenAI and a local Ollama server, otherwise the
// mock keeps the demo usable offline.
func initCompleter(cfg *config.Config) agents.Completer {
	switch cfg.Provider {
	case "anthropic":
		localLogger.Info("Anthropic client initialized.")
		return client.NewAnthropicClient(cfg.AnthropicKey, cfg.AnthropicModel)
	case "openai":
		localLogger.Info("OpenAI client initialized.")
		return client.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	case "ollama":
		localLogger.Info("Ollama client initialized.")
		return client.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel)
	case "mock":
		localLogger.Info("Mock client initialized.")
		return client.NewMockClient()
	}

	if cfg.AnthropicKey != "" {
		localLogger.Info("Anthropic client initialized.")
		return client.NewAnthropicClient(cfg.AnthropicKey, cfg.AnthropicModel)
	}
	if cfg.OpenAIKey != "" {
		localLogger.Info("OpenAI client initialized.")
		return client.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	}
	if ollama := client.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel); ollama.Available() {
		localLogger.Info("Ollama client initialized.")
		return ollama
	}

	localLogger.Warn("No provider available, falling back to the mock client.")
	return client.NewMockClient()
}
