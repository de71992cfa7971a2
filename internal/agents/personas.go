// Package agents holds the specialist personas and the supervisor that
// routes each user message to one of them.
package agents

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	AgentScientist = "SCIENTIST"
	AgentCreative  = "CREATIVE"
	AgentCoder     = "CODER"
)

// Persona is one specialist the supervisor can route to.
type Persona struct {
	Name         string `toml:"name"`
	Icon         string `toml:"icon"`
	Description  string `toml:"description"`
	SystemPrompt string `toml:"system_prompt"`
}

type personaFile struct {
	Personas []Persona `toml:"personas"`
}

// DefaultPersonas returns the built-in team. The first entry doubles as
// the routing fallback.
func DefaultPersonas() []Persona {
	return []Persona{
		{
			Name:        AgentScientist,
			Icon:        "🔬",
			Description: "Factual questions, science, research, explanations of how things work",
			SystemPrompt: "You are a brilliant scientist and educator.\n" +
				"You explain complex topics clearly and accurately.\n" +
				"You love sharing fascinating facts and breaking down how things work.\n" +
				"Always cite that you're the Scientist agent at the start.\n" +
				"Be informative but concise (2-3 paragraphs max).",
		},
		{
			Name:        AgentCreative,
			Icon:        "🎨",
			Description: "Stories, poetry, creative writing, jokes, imaginative content",
			SystemPrompt: "You are a creative writing genius and storyteller.\n" +
				"You craft beautiful prose, poetry, and imaginative content.\n" +
				"Your writing is vivid, engaging, and emotionally resonant.\n" +
				"Always mention you're the Creative agent at the start.\n" +
				"Keep responses focused but impactful.",
		},
		{
			Name:        AgentCoder,
			Icon:        "💻",
			Description: "Programming questions, code writing, debugging, technical implementations",
			SystemPrompt: "You are an expert programmer and software engineer.\n" +
				"You write clean, well-documented code and explain technical concepts clearly.\n" +
				"You're proficient in Python, JavaScript, and general CS concepts.\n" +
				"Always mention you're the Coder agent at the start.\n" +
				"Include code examples when relevant, with explanations.",
		},
	}
}

// LoadPersonas reads a TOML persona file. An empty path or a missing file
// falls back to the built-in set; a present but broken file is an error so
// a typo does not silently discard someone's custom team.
func LoadPersonas(path string) ([]Persona, error) {
	if path == "" {
		return DefaultPersonas(), nil
	}

	var file personaFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return DefaultPersonas(), nil
		}
		return nil, fmt.Errorf("decode personas file %s: %w", path, err)
	}
	if len(file.Personas) == 0 {
		return nil, fmt.Errorf("personas file %s defines no personas", path)
	}

	for i := range file.Personas {
		if file.Personas[i].Name == "" {
			return nil, fmt.Errorf("personas file %s: persona %d has no name", path, i)
		}
		if file.Personas[i].Icon == "" {
			file.Personas[i].Icon = "🤖"
		}
	}
	return file.Personas, nil
}
