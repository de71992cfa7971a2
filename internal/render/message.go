package render

// Origin identifies who produced a chat message.
type Origin int

const (
	OriginUser Origin = iota
	OriginAgent
)

// ChatMessage is one transcript entry. Immutable once created.
type ChatMessage struct {
	Text   string
	Origin Origin

	// AgentLabel names the backend persona that produced an agent message.
	// Empty for user messages and for agent messages without one (the
	// fixed failure line).
	AgentLabel string
}

// AgentIcon maps a backend agent label to its display icon. Labels the
// frontend does not know about get the generic robot.
func AgentIcon(label string) string {
	switch label {
	case "SCIENTIST":
		return "🔬"
	case "CREATIVE":
		return "🎨"
	case "CODER":
		return "💻"
	default:
		return "🤖"
	}
}
