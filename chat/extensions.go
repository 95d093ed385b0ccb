package chat

// Extension is a named set of optional transform hooks. Any nil hook is
// skipped. Hooks run in registration order, each receiving the previous
// hook's output, so the pipeline is an explicit left-to-right fold rather
// than dynamic dispatch.
type Extension struct {
	Name string

	// BotPrefix transforms the assistant-turn prefix before it is
	// appended to a chat-mode prompt.
	BotPrefix func(prefix string, state *State) string

	// Input transforms raw user input before it enters history.
	Input func(text string, state *State) string

	// ChatInput transforms the internal and visible copies of user input
	// together.
	ChatInput func(text, visible string, state *State) (string, string)

	// Output transforms visible assistant output.
	Output func(text string, state *State) string

	// History transforms the conversation before prompt assembly.
	History func(h History) History

	// State transforms the request state before prompt assembly.
	State func(s *State) *State

	// ChatPrompt replaces the entire prompt build. The first hook
	// returning ok short-circuits the composer.
	ChatPrompt func(userInput string, state *State, opts Options) (prompt string, ok bool)
}

// Extensions is an ordered hook pipeline.
type Extensions []Extension

// ApplyBotPrefix runs the bot-prefix hooks over the probed prefix.
func (xs Extensions) ApplyBotPrefix(prefix string, state *State) string {
	for _, x := range xs {
		if x.BotPrefix != nil {
			prefix = x.BotPrefix(prefix, state)
		}
	}
	return prefix
}

// ApplyInput runs the input hooks over raw user text.
func (xs Extensions) ApplyInput(text string, state *State) string {
	for _, x := range xs {
		if x.Input != nil {
			text = x.Input(text, state)
		}
	}
	return text
}

// ApplyChatInput runs the chat-input hooks over the internal and visible
// copies of user input.
func (xs Extensions) ApplyChatInput(text, visible string, state *State) (string, string) {
	for _, x := range xs {
		if x.ChatInput != nil {
			text, visible = x.ChatInput(text, visible, state)
		}
	}
	return text, visible
}

// ApplyOutput runs the output hooks over visible assistant text.
func (xs Extensions) ApplyOutput(text string, state *State) string {
	for _, x := range xs {
		if x.Output != nil {
			text = x.Output(text, state)
		}
	}
	return text
}

// ApplyHistory runs the history hooks.
func (xs Extensions) ApplyHistory(h History) History {
	for _, x := range xs {
		if x.History != nil {
			h = x.History(h)
		}
	}
	return h
}

// ApplyState runs the state hooks.
func (xs Extensions) ApplyState(state *State) *State {
	for _, x := range xs {
		if x.State != nil {
			state = x.State(state)
		}
	}
	return state
}

// ApplyChatPrompt offers the build to the custom-prompt hooks. The first
// hook that returns ok wins and its prompt is used verbatim.
func (xs Extensions) ApplyChatPrompt(userInput string, state *State, opts Options) (string, bool) {
	for _, x := range xs {
		if x.ChatPrompt != nil {
			if prompt, ok := x.ChatPrompt(userInput, state, opts); ok {
				return prompt, true
			}
		}
	}
	return "", false
}
