package chat

// StoppingStrings derives the stop strings for the generation loop by
// probing user and assistant boundaries across every renderer active for
// the state's mode. The four cross-combinations of closing suffix and
// opening prefix cover each way the model could start a new turn on its
// own.
//
// Caller-supplied ExtraStoppingStrings are appended and consumed: the
// state's list is cleared so ad-hoc stop strings apply to one request only.
// The result is deduplicated, first occurrence wins.
func (b *PromptBuilder) StoppingStrings(state *State) ([]string, error) {
	var renderers []Renderer
	if state.Mode == ModeInstruct || state.Mode == ModeChatInstruct {
		renderers = append(renderers, b.instructRenderer(state))
	}
	if state.Mode == ModeChat || state.Mode == ModeChatInstruct {
		renderers = append(renderers, b.chatRenderer(state))
	}

	var stops []string
	for _, renderer := range renderers {
		prefixBot, suffixBot, err := GenerationPrompt(renderer, false, true)
		if err != nil {
			return nil, err
		}
		prefixUser, suffixUser, err := GenerationPrompt(renderer, true, true)
		if err != nil {
			return nil, err
		}

		stops = append(stops,
			suffixUser+prefixBot,
			suffixUser+prefixUser,
			suffixBot+prefixBot,
			suffixBot+prefixUser,
		)
	}

	stops = append(stops, state.ExtraStoppingStrings...)
	state.ExtraStoppingStrings = nil

	seen := make(map[string]bool, len(stops))
	unique := stops[:0]
	for _, s := range stops {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	return unique, nil
}
