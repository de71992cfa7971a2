package render

import (
	"html"

	"github.com/rivo/tview"
)

// Markup is the output vocabulary the formatting passes emit into. One
// implementation targets the browser widget, the other the terminal widget.
type Markup interface {
	// EscapeText makes raw text safe for the display surface. It is applied
	// to fenced code-block content and to plain text outside any code span,
	// but not to inline-code content.
	EscapeText(s string) string
	CodeBlock(lang, escaped string) string
	InlineCode(content string) string
	LineBreak() string
	UserLabel() string
	AgentLabel(icon, label string) string
}

// HTMLMarkup formats messages for a DOM transcript.
type HTMLMarkup struct{}

func (HTMLMarkup) EscapeText(s string) string {
	return html.EscapeString(s)
}

func (HTMLMarkup) CodeBlock(lang, escaped string) string {
	return "<pre><code>" + escaped + "</code></pre>"
}

func (HTMLMarkup) InlineCode(content string) string {
	return "<code>" + content + "</code>"
}

func (HTMLMarkup) LineBreak() string {
	return "<br>"
}

func (HTMLMarkup) UserLabel() string {
	return `<div class="message-label user-label">You</div>`
}

func (HTMLMarkup) AgentLabel(icon, label string) string {
	return `<div class="message-label agent-label">` + icon + " " + html.EscapeString(label) + " Agent</div>"
}

// TViewMarkup formats messages with tview color tags for the terminal
// transcript.
type TViewMarkup struct{}

func (TViewMarkup) EscapeText(s string) string {
	return tview.Escape(s)
}

func (TViewMarkup) CodeBlock(lang, escaped string) string {
	header := ""
	if lang != "" {
		header = "[gray]" + lang + "[-]\n"
	}
	return "\n" + header + "[yellow]" + escaped + "[-]\n"
}

func (TViewMarkup) InlineCode(content string) string {
	return "[aqua]" + content + "[-]"
}

func (TViewMarkup) LineBreak() string {
	return "\n"
}

func (TViewMarkup) UserLabel() string {
	return "[red::]You:[-]\n"
}

func (TViewMarkup) AgentLabel(icon, label string) string {
	return "[green::]" + icon + " " + label + " Agent:[-]\n"
}
