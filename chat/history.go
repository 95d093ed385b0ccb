package chat

import (
	"html"
	"strings"
)

// BeginVisibleMarker is the internal user text of a greeting turn. It marks
// a turn whose user half must never reach the prompt or the display.
const BeginVisibleMarker = "<|BEGIN-VISIBLE-CHAT|>"

// Turn is one (user, assistant) exchange.
type Turn struct {
	User      string
	Assistant string
}

// History holds the conversation as two parallel turn sequences: Internal
// carries the raw text used for re-prompting, Visible the display-formatted
// (HTML-escaped) text. Index i refers to the same logical turn in both;
// every mutation keeps the lengths equal.
type History struct {
	Internal []Turn
	Visible  []Turn
}

// NewHistory starts a conversation. In chat modes a non-empty greeting
// becomes an initial assistant turn whose user half is the begin-visible
// marker, so it displays without a user line and never re-enters the prompt
// as user text.
func NewHistory(mode Mode, greeting, name1, name2 string) History {
	var h History
	if mode == ModeInstruct {
		return h
	}

	greeting = ReplaceCharacterNames(greeting, name1, name2)
	if greeting != "" {
		h.Internal = append(h.Internal, Turn{User: BeginVisibleMarker, Assistant: greeting})
		h.Visible = append(h.Visible, Turn{User: "", Assistant: greeting})
	}
	return h
}

// Len returns the number of turns.
func (h *History) Len() int {
	return len(h.Internal)
}

// Append adds a new user turn with an empty assistant reply. The visible
// copy is HTML-escaped.
func (h *History) Append(text string) {
	h.Internal = append(h.Internal, Turn{User: text})
	h.Visible = append(h.Visible, Turn{User: html.EscapeString(text)})
}

// SetLastReply fills in the assistant half of the last turn. The visible
// copy is HTML-escaped. No-op on an empty history.
func (h *History) SetLastReply(reply string) {
	if len(h.Internal) == 0 {
		return
	}
	h.Internal[len(h.Internal)-1].Assistant = reply
	h.Visible[len(h.Visible)-1].Assistant = html.EscapeString(reply)
}

// RemoveLast drops the last turn and returns its unescaped user text.
// Greeting turns stay put: a turn whose internal user text is the
// begin-visible marker is not removed.
func (h *History) RemoveLast() (string, bool) {
	if len(h.Internal) == 0 || h.Internal[len(h.Internal)-1].User == BeginVisibleMarker {
		return "", false
	}

	last := h.Visible[len(h.Visible)-1]
	h.Internal = h.Internal[:len(h.Internal)-1]
	h.Visible = h.Visible[:len(h.Visible)-1]
	return html.UnescapeString(last.User), true
}

// LastReply returns the unescaped visible text of the last assistant reply.
func (h *History) LastReply() (string, bool) {
	if len(h.Visible) == 0 {
		return "", false
	}
	return html.UnescapeString(h.Visible[len(h.Visible)-1].Assistant), true
}

// DummyMessage appends a user message without generating a reply.
func (h *History) DummyMessage(text string) {
	h.Append(text)
}

// DummyReply sets the last assistant reply without generating it, opening a
// fresh turn first if the last reply is already filled in. Used to seed a
// reply the model then continues.
func (h *History) DummyReply(text string) {
	if len(h.Visible) > 0 && h.Visible[len(h.Visible)-1].Assistant != "" {
		h.Internal = append(h.Internal, Turn{})
		h.Visible = append(h.Visible, Turn{})
	}
	if len(h.Visible) == 0 {
		h.Internal = append(h.Internal, Turn{})
		h.Visible = append(h.Visible, Turn{})
	}
	h.SetLastReply(text)
}

// Copy returns a deep copy. Callers mutating history for streaming display
// must copy first; the prompt builder itself never mutates history.
func (h *History) Copy() History {
	out := History{
		Internal: make([]Turn, len(h.Internal)),
		Visible:  make([]Turn, len(h.Visible)),
	}
	copy(out.Internal, h.Internal)
	copy(out.Visible, h.Visible)
	return out
}

// ReplaceCharacterNames substitutes user/character placeholders in persona
// or greeting text with the display names.
func ReplaceCharacterNames(text, name1, name2 string) string {
	text = strings.ReplaceAll(text, "{{user}}", name1)
	text = strings.ReplaceAll(text, "{{char}}", name2)
	text = strings.ReplaceAll(text, "<USER>", name1)
	return strings.ReplaceAll(text, "<BOT>", name2)
}
