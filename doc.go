// Package chatkit provides prompt assembly for chat-style Large Language Models.
//
// chatkit converts a structured conversation history plus a pair of chat and
// instruction templates into a single linear prompt, trimmed to a token
// budget. Each subpackage can be used independently:
//
//   - chat: message sequencing, boundary probing, prompt composition, and
//     budget-driven truncation across chat, instruct, and chat-instruct modes
//   - template: sandboxed template rendering for chat and plain templates
//   - tokens: token counting and prompt budget computation
//   - store: file-backed instruction template loading with cache invalidation
//
// # Quick Start
//
// Building a prompt:
//
//	import "github.com/randalmurphal/chatkit/chat"
//
//	state := &chat.State{
//	    Mode:                chat.ModeChat,
//	    Name1:               "You",
//	    Name2:               "Assistant",
//	    ChatTemplate:        chat.DefaultChatTemplate,
//	    InstructionTemplate: chat.DefaultInstructionTemplate,
//	    TruncationLength:    4096,
//	    MaxNewTokens:        512,
//	}
//	builder := chat.NewPromptBuilder()
//	prompt, err := builder.Build("Hello!", state, chat.Options{})
//
// Stopping strings for the generation loop:
//
//	stops, err := builder.StoppingStrings(state)
//
// Loading instruction templates from disk:
//
//	import "github.com/randalmurphal/chatkit/store"
//
//	s, _ := store.Open("instruction-templates")
//	defer s.Close()
//	tmpl, err := s.InstructionTemplate("Alpaca")
//
// # Design Philosophy
//
// chatkit follows these principles:
//
//   - Templates are data, not code: rendering is sandboxed and side-effect free
//   - Boundary text is derived from templates by probing, never configured twice
//   - Explicit caches with invalidation instead of process-lifetime memoization
//   - Interfaces for extensibility, concrete types for simplicity
package chatkit
