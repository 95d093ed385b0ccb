package chat

import (
	"errors"
	"slices"
	"testing"
)

func TestStoppingStrings_ChatMode(t *testing.T) {
	b := NewPromptBuilder()

	stops, err := b.StoppingStrings(chatState())
	if err != nil {
		t.Fatalf("StoppingStrings() error: %v", err)
	}

	want := []string{"\nChiharu:", "\nYou:"}
	if !slices.Equal(stops, want) {
		t.Errorf("StoppingStrings() = %q, expected %q", stops, want)
	}
}

func TestStoppingStrings_InstructMode(t *testing.T) {
	b := NewPromptBuilder()
	state := chatState()
	state.Mode = ModeInstruct

	stops, err := b.StoppingStrings(state)
	if err != nil {
		t.Fatalf("StoppingStrings() error: %v", err)
	}

	want := []string{
		"<|im_end|>\n<|im_start|>assistant\n",
		"<|im_end|>\n<|im_start|>user\n",
	}
	if !slices.Equal(stops, want) {
		t.Errorf("StoppingStrings() = %q, expected %q", stops, want)
	}
}

func TestStoppingStrings_ChatInstructUsesBothRenderers(t *testing.T) {
	b := NewPromptBuilder()
	state := chatState()
	state.Mode = ModeChatInstruct

	stops, err := b.StoppingStrings(state)
	if err != nil {
		t.Fatalf("StoppingStrings() error: %v", err)
	}

	want := []string{
		"<|im_end|>\n<|im_start|>assistant\n",
		"<|im_end|>\n<|im_start|>user\n",
		"\nChiharu:",
		"\nYou:",
	}
	if !slices.Equal(stops, want) {
		t.Errorf("StoppingStrings() = %q, expected %q", stops, want)
	}
}

func TestStoppingStrings_ExtrasConsumed(t *testing.T) {
	b := NewPromptBuilder()
	state := chatState()
	state.ExtraStoppingStrings = []string{"###", "\nYou:", "###"}

	stops, err := b.StoppingStrings(state)
	if err != nil {
		t.Fatalf("StoppingStrings() error: %v", err)
	}

	want := []string{"\nChiharu:", "\nYou:", "###"}
	if !slices.Equal(stops, want) {
		t.Errorf("StoppingStrings() = %q, expected %q", stops, want)
	}
	if state.ExtraStoppingStrings != nil {
		t.Error("ExtraStoppingStrings should be consumed")
	}
}

func TestStoppingStrings_ProbeErrorPropagates(t *testing.T) {
	b := NewPromptBuilder()
	state := chatState()
	// A template that drops message content entirely cannot be probed.
	state.ChatTemplate = "{{range .messages}}{{.role}}{{end}}"

	_, err := b.StoppingStrings(state)
	if !errors.Is(err, ErrProbe) {
		t.Errorf("expected ErrProbe, got %v", err)
	}
}
