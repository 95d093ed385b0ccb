package chat

import (
	"testing"
)

func TestNewHistory(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		greeting string
		wantLen  int
	}{
		{name: "chat with greeting", mode: ModeChat, greeting: "Hello {{user}}!", wantLen: 1},
		{name: "chat without greeting", mode: ModeChat, greeting: "", wantLen: 0},
		{name: "instruct ignores greeting", mode: ModeInstruct, greeting: "Hello!", wantLen: 0},
		{name: "chat-instruct with greeting", mode: ModeChatInstruct, greeting: "Hi", wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.mode, tt.greeting, "Ann", "Bot")
			if h.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, expected %d", h.Len(), tt.wantLen)
			}
			if len(h.Internal) != len(h.Visible) {
				t.Fatalf("internal/visible length mismatch: %d vs %d", len(h.Internal), len(h.Visible))
			}
			if tt.wantLen == 1 {
				if h.Internal[0].User != BeginVisibleMarker {
					t.Errorf("internal user = %q, expected begin-visible marker", h.Internal[0].User)
				}
				if h.Visible[0].User != "" {
					t.Errorf("visible user = %q, expected empty", h.Visible[0].User)
				}
			}
		})
	}
}

func TestNewHistory_GreetingSubstitutesNames(t *testing.T) {
	h := NewHistory(ModeChat, "I am {{char}}, you are {{user}}.", "Ann", "Bot")
	want := "I am Bot, you are Ann."
	if h.Internal[0].Assistant != want {
		t.Errorf("greeting = %q, expected %q", h.Internal[0].Assistant, want)
	}
}

func TestHistory_AppendAndSetLastReply(t *testing.T) {
	var h History
	h.Append("2 < 3 & so on")
	h.SetLastReply("yes & no")

	if h.Internal[0].User != "2 < 3 & so on" {
		t.Errorf("internal user = %q, expected raw text", h.Internal[0].User)
	}
	if h.Visible[0].User != "2 &lt; 3 &amp; so on" {
		t.Errorf("visible user = %q, expected escaped text", h.Visible[0].User)
	}
	if h.Internal[0].Assistant != "yes & no" {
		t.Errorf("internal assistant = %q, expected raw text", h.Internal[0].Assistant)
	}
	if h.Visible[0].Assistant != "yes &amp; no" {
		t.Errorf("visible assistant = %q, expected escaped text", h.Visible[0].Assistant)
	}
	if len(h.Internal) != len(h.Visible) {
		t.Fatalf("internal/visible length mismatch")
	}
}

func TestHistory_RemoveLast(t *testing.T) {
	var h History
	h.Append("a < b")
	h.SetLastReply("reply")

	text, ok := h.RemoveLast()
	if !ok {
		t.Fatal("RemoveLast() = false, expected true")
	}
	if text != "a < b" {
		t.Errorf("RemoveLast() = %q, expected unescaped user text", text)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", h.Len())
	}

	if _, ok := h.RemoveLast(); ok {
		t.Error("RemoveLast() on empty history = true, expected false")
	}
}

func TestHistory_RemoveLastKeepsGreeting(t *testing.T) {
	h := NewHistory(ModeChat, "Hello!", "Ann", "Bot")

	if _, ok := h.RemoveLast(); ok {
		t.Error("RemoveLast() removed the greeting turn")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", h.Len())
	}
}

func TestHistory_LastReply(t *testing.T) {
	var h History
	if _, ok := h.LastReply(); ok {
		t.Error("LastReply() on empty history = true, expected false")
	}

	h.Append("q")
	h.SetLastReply("a & b")
	reply, ok := h.LastReply()
	if !ok || reply != "a & b" {
		t.Errorf("LastReply() = %q, %v, expected unescaped reply", reply, ok)
	}
}

func TestHistory_DummyReply(t *testing.T) {
	var h History

	// Empty history grows a turn to hold the reply.
	h.DummyReply("seeded")
	if h.Len() != 1 || h.Internal[0].Assistant != "seeded" {
		t.Fatalf("history after DummyReply = %+v", h)
	}

	// A filled-in last reply opens a fresh turn.
	h.DummyReply("again")
	if h.Len() != 2 || h.Internal[1].Assistant != "again" {
		t.Fatalf("history after second DummyReply = %+v", h)
	}

	// An open turn's reply is filled in place.
	h.Append("question")
	h.DummyReply("answer")
	if h.Len() != 3 || h.Internal[2].Assistant != "answer" {
		t.Fatalf("history after in-place DummyReply = %+v", h)
	}
}

func TestHistory_Copy(t *testing.T) {
	var h History
	h.Append("original")
	h.SetLastReply("reply")

	clone := h.Copy()
	clone.Internal[0].User = "mutated"
	clone.Append("extra")

	if h.Internal[0].User != "original" {
		t.Errorf("copy mutation leaked into original: %q", h.Internal[0].User)
	}
	if h.Len() != 1 {
		t.Errorf("copy append leaked into original: Len() = %d", h.Len())
	}
}
