package chat

import "errors"

// Sentinel errors for prompt assembly. Template parse and execution
// failures surface as the template package's sentinel errors.
var (
	// ErrProbe is returned when boundary probing cannot find its sentinel
	// payloads verbatim in the rendered output. It indicates a template
	// that escapes, reorders, or otherwise mangles message content, and is
	// never masked: truncation and stopping strings depend on correct
	// boundaries.
	ErrProbe = errors.New("sentinel not found in rendered template output")

	// ErrNoCharacter is returned by State.Validate when a chat mode has no
	// assistant display name configured.
	ErrNoCharacter = errors.New("no character loaded for chat mode")
)
