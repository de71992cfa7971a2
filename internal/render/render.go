// Package render turns raw chat text into display markup and keeps the
// append-only transcript. Formatting runs as three sequential passes over
// immutable slices of the input: fenced code blocks first, inline code
// spans on the remainder, line breaks last. The pass order is what keeps
// code content verbatim and everything else escaped exactly once.
package render

import "strings"

type segment struct {
	fence   bool
	lang    string
	content string
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// splitFences cuts text into plain and fenced-code segments. A fence is a
// pair of triple-backtick markers; an unterminated opener is not a fence
// and stays in the surrounding plain text, backticks and all.
func splitFences(text string) []segment {
	var segs []segment
	for {
		open := strings.Index(text, "```")
		if open < 0 {
			break
		}
		rest := text[open+3:]
		end := strings.Index(rest, "```")
		if end < 0 {
			break
		}
		if open > 0 {
			segs = append(segs, segment{content: text[:open]})
		}
		lang, content := splitLang(rest[:end])
		segs = append(segs, segment{fence: true, lang: lang, content: content})
		text = rest[end+3:]
	}
	if text != "" || len(segs) == 0 {
		segs = append(segs, segment{content: text})
	}
	return segs
}

// splitLang peels an optional language tag off a fence body: a leading run
// of word characters, optionally followed by one newline. A single
// trailing newline belongs to the closing marker, not the content.
func splitLang(body string) (lang, content string) {
	i := 0
	for i < len(body) && isWordChar(body[i]) {
		i++
	}
	lang, content = body[:i], body[i:]
	content = strings.TrimPrefix(content, "\n")
	content = strings.TrimSuffix(content, "\n")
	return lang, content
}

// formatPlain handles the non-fence passes: inline code spans between
// single backticks (content passed through verbatim), then escaping and
// line breaks on what is left. An empty pair of backticks is not a span;
// the first backtick is treated as plain text.
func formatPlain(text string, m Markup) string {
	var out strings.Builder
	for {
		open := strings.Index(text, "`")
		if open < 0 {
			break
		}
		rest := text[open+1:]
		end := strings.Index(rest, "`")
		if end < 0 {
			break
		}
		if end == 0 {
			out.WriteString(formatText(text[:open+1], m))
			text = rest
			continue
		}
		out.WriteString(formatText(text[:open], m))
		out.WriteString(m.InlineCode(rest[:end]))
		text = rest[end+1:]
	}
	out.WriteString(formatText(text, m))
	return out.String()
}

func formatText(text string, m Markup) string {
	return strings.ReplaceAll(m.EscapeText(text), "\n", m.LineBreak())
}

// Format converts raw message text into markup. It is a pure function of
// its input; labels are not applied here.
func Format(text string, m Markup) string {
	var out strings.Builder
	for _, seg := range splitFences(text) {
		if seg.fence {
			out.WriteString(m.CodeBlock(seg.lang, m.EscapeText(seg.content)))
			continue
		}
		out.WriteString(formatPlain(seg.content, m))
	}
	return out.String()
}

// FormatMessage formats a message body and prefixes the speaker label:
// "You" for user messages, icon plus "<NAME> Agent" for agent messages
// that carry a label. Unlabeled agent messages get no prefix.
func FormatMessage(msg ChatMessage, m Markup) string {
	body := Format(msg.Text, m)
	switch {
	case msg.Origin == OriginUser:
		return m.UserLabel() + body
	case msg.AgentLabel != "":
		return m.AgentLabel(AgentIcon(msg.AgentLabel), msg.AgentLabel) + body
	default:
		return body
	}
}

// Sink receives one formatted message per Append call. The terminal widget
// backs it with the conversation view; tests use an in-memory slice.
type Sink interface {
	Append(markup string)
}

// Renderer formats messages for one display surface and owns the
// transcript.
type Renderer struct {
	markup  Markup
	sink    Sink
	history []ChatMessage
}

func New(markup Markup, sink Sink) *Renderer {
	return &Renderer{markup: markup, sink: sink}
}

// Render formats msg, appends it to the transcript and the sink, and
// returns the markup.
func (r *Renderer) Render(msg ChatMessage) string {
	out := FormatMessage(msg, r.markup)
	r.history = append(r.history, msg)
	r.sink.Append(out)
	return out
}

// Messages returns a copy of the transcript in arrival order.
func (r *Renderer) Messages() []ChatMessage {
	out := make([]ChatMessage, len(r.history))
	copy(out, r.history)
	return out
}
