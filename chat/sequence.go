package chat

import (
	"slices"
	"strings"
)

// BuildMessages assembles the ordered message list for one prompt build.
//
// Instruct mode opens with the custom system message; chat modes open with
// the character context, placeholders substituted. Either is skipped when
// blank. History turns follow oldest first, each contributing its user
// message (unless blank or the begin-visible marker) and then its assistant
// message (unless blank). The new input lands as a trailing user message
// except when impersonating or continuing, where the model extends existing
// content instead.
func BuildMessages(userInput string, state *State, continuation, impersonate bool) []Message {
	var messages []Message

	if state.Mode == ModeInstruct {
		if strings.TrimSpace(state.CustomSystemMessage) != "" {
			messages = append(messages, Message{Role: RoleSystem, Content: state.CustomSystemMessage})
		}
	} else {
		if strings.TrimSpace(state.Context) != "" {
			context := ReplaceCharacterNames(state.Context, state.Name1, state.Name2)
			messages = append(messages, Message{Role: RoleSystem, Content: context})
		}
	}

	// Walk turns newest first, inserting at a fixed position just after
	// the system message. Within a turn the assistant message goes in
	// before the user message, which nets out to chronological
	// user-then-assistant order.
	insertPos := len(messages)
	for i := len(state.History.Internal) - 1; i >= 0; i-- {
		turn := state.History.Internal[i]
		userMsg := strings.TrimSpace(turn.User)
		assistantMsg := strings.TrimSpace(turn.Assistant)

		if assistantMsg != "" {
			messages = slices.Insert(messages, insertPos, Message{Role: RoleAssistant, Content: assistantMsg})
		}
		if userMsg != "" && userMsg != BeginVisibleMarker {
			messages = slices.Insert(messages, insertPos, Message{Role: RoleUser, Content: userMsg})
		}
	}

	userInput = strings.TrimSpace(userInput)
	if userInput != "" && !impersonate && !continuation {
		messages = append(messages, Message{Role: RoleUser, Content: userInput})
	}

	return messages
}
