package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/bz888/agentchat/internal/logger"
)

// Completer produces one completion for a system prompt and a user
// message. Provider clients implement it.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Supervisor routes each message to a persona and collects the specialist's
// reply.
type Supervisor struct {
	completer Completer
	personas  []Persona

	localLogger *logger.Logger
}

func NewSupervisor(completer Completer, personas []Persona) *Supervisor {
	return &Supervisor{
		completer:   completer,
		personas:    personas,
		localLogger: logger.NewLogger("supervisor"),
	}
}

// Personas returns the team this supervisor routes over.
func (s *Supervisor) Personas() []Persona {
	return s.personas
}

func (s *Supervisor) systemPrompt() string {
	var team strings.Builder
	for _, p := range s.personas {
		fmt.Fprintf(&team, "- %s: %s\n", p.Name, p.Description)
	}

	names := make([]string, len(s.personas))
	for i, p := range s.personas {
		names[i] = p.Name
	}

	return "You are a supervisor managing a team of specialists.\n\n" +
		"Your team:\n" + team.String() + "\n" +
		"Analyze the user's message and decide which specialist should handle it.\n" +
		"Respond with ONLY one word: " + strings.Join(names, ", ")
}

// Route asks the completer for a one-word decision. Anything that is not a
// known persona name falls back to the first persona.
func (s *Supervisor) Route(ctx context.Context, message string) (Persona, error) {
	decision, err := s.completer.Complete(ctx, s.systemPrompt(), message)
	if err != nil {
		return Persona{}, fmt.Errorf("routing decision: %w", err)
	}

	name := strings.ToUpper(strings.TrimSpace(decision))
	for _, p := range s.personas {
		if p.Name == name {
			s.localLogger.Info("Routing to ", p.Name)
			return p, nil
		}
	}

	s.localLogger.Warn("Unrecognized routing decision ", decision, ", falling back to ", s.personas[0].Name)
	return s.personas[0], nil
}

// Respond routes the message and returns the selected persona together
// with its reply, prefixed with the persona's icon.
func (s *Supervisor) Respond(ctx context.Context, message string) (Persona, string, error) {
	persona, err := s.Route(ctx, message)
	if err != nil {
		return Persona{}, "", err
	}

	reply, err := s.completer.Complete(ctx, persona.SystemPrompt, message)
	if err != nil {
		return Persona{}, "", fmt.Errorf("%s reply: %w", persona.Name, err)
	}
	return persona, persona.Icon + " " + reply, nil
}
