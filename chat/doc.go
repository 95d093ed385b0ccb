// Package chat assembles linear text prompts from structured conversation
// history for chat, instruct, and chat-instruct generation modes.
//
// The pipeline has four stages. BuildMessages sequences the system message,
// history turns, and new input into an ordered role/content list.
// GenerationPrompt probes the active template with sentinel payloads to
// recover the literal prefix and suffix it emits around a turn, so boundary
// text never has to be configured separately from the template.
// PromptBuilder composes the final prompt for the mode, handling
// continuation (extending an unfinished reply in place) and impersonation
// (generating as the user), then iteratively drops the oldest non-system
// messages until the rendered prompt fits the token budget.
//
// # Usage
//
//	state := &chat.State{
//	    Mode:                chat.ModeChat,
//	    Name1:               "You",
//	    Name2:               "Chiharu",
//	    Context:             "{{char}} is a helpful assistant.",
//	    ChatTemplate:        chat.DefaultChatTemplate,
//	    InstructionTemplate: chat.DefaultInstructionTemplate,
//	    ChatInstructCommand: chat.DefaultChatInstructCommand,
//	    History:             chat.NewHistory(chat.ModeChat, "Hello!", "You", "Chiharu"),
//	    TruncationLength:    8192,
//	    MaxNewTokens:        512,
//	}
//	if err := state.Validate(); err != nil {
//	    return err
//	}
//
//	builder := chat.NewPromptBuilder()
//	prompt, err := builder.Build("How are you?", state, chat.Options{})
//
// The generation loop also needs the stop strings derived from the same
// templates:
//
//	stops, err := builder.StoppingStrings(state)
//
// # Modes
//
// ModeChat renders dialogue through the chat template with the character
// context as system message. ModeInstruct renders through the instruction
// template with the custom system message. ModeChatInstruct renders the
// chat transcript first, substitutes it into the chat-instruct command, and
// renders that command as an instruction-style user/assistant pair with the
// assistant turn left open.
//
// # Truncation
//
// When the rendered prompt exceeds TruncationLength - MaxNewTokens tokens,
// the builder removes the message at index 1 while the first message is a
// system message and anything else remains, otherwise the message at index
// 0, recomposing after each removal. Running out of messages is graceful:
// the minimal prompt (typically just the generation prefix) is returned.
//
// # Extensions
//
// Hooks are an ordered pipeline (Extensions) of typed transform functions.
// The builder itself consults the BotPrefix and ChatPrompt hooks; the rest
// are applied by the enclosing generation layer.
//
// # Location
//
// This package is part of the chatkit library:
//
//	import "github.com/randalmurphal/chatkit/chat"
package chat
