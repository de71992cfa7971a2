package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Set by the root command's persistent flags.
var (
	Dev     bool
	LogPath string
)

// Config holds everything read from the environment.
type Config struct {
	Port       string
	BackendURL string

	// Provider selects the completion backend: auto, mock, ollama, openai
	// or anthropic. "auto" probes in order anthropic, openai, ollama and
	// falls back to mock.
	Provider string

	PersonasPath string

	OllamaHost  string
	OllamaModel string

	OpenAIKey   string
	OpenAIModel string

	AnthropicKey   string
	AnthropicModel string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("AGENTCHAT_PORT", "8080"),
		BackendURL: getEnv("AGENTCHAT_BACKEND_URL", "http://localhost:8080"),

		Provider:     getEnv("AGENTCHAT_PROVIDER", "auto"),
		PersonasPath: getEnv("AGENTCHAT_PERSONAS", ""),

		OllamaHost:  getEnv("OLLAMA_HOST", "localhost:11434"),
		OllamaModel: getEnv("AGENTCHAT_OLLAMA_MODEL", "llama3:latest"),

		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel: getEnv("AGENTCHAT_OPENAI_MODEL", "gpt-3.5-turbo"),

		AnthropicKey:   getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel: getEnv("AGENTCHAT_ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
	}
}
