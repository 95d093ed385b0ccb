package chat

import (
	"slices"
	"strings"

	"github.com/randalmurphal/chatkit/template"
	"github.com/randalmurphal/chatkit/tokens"
)

// bosTokens are beginning-of-text markers that some templates prepend
// redundantly. Leading copies are collapsed from every composed prompt.
var bosTokens = []string{"<s>", "<|startoftext|>"}

// Options selects prompt-build variants.
type Options struct {
	// Impersonate generates a user turn instead of an assistant turn.
	Impersonate bool

	// Continue extends the unfinished last message in place instead of
	// opening a new one.
	Continue bool

	// ReturnRows populates Prompt.Rows with the message contents that
	// survived truncation.
	ReturnRows bool
}

// Prompt is the rendered result of one build. It is recomputed on every
// call and never persisted.
type Prompt struct {
	Text string

	// Rows holds the content of each message used to build Text, in
	// order. Populated only when Options.ReturnRows is set.
	Rows []string
}

// PromptBuilder assembles prompts from history, mode, and templates, and
// trims them to the token budget. The zero value is not usable; construct
// with NewPromptBuilder. A builder is safe for concurrent use across
// independent states: it holds no per-request mutable state.
type PromptBuilder struct {
	engine     *template.Engine
	counter    tokens.Counter
	extensions Extensions
}

// NewPromptBuilder creates a builder with the default template engine and
// the estimating token counter.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		engine:  template.NewEngine(),
		counter: tokens.NewEstimatingCounter(),
	}
}

// WithCounter sets the token counter used to measure prompts against the
// budget. Plug in a model tokenizer via tokens.CounterFunc for exact
// counts. The counter must be deterministic and side-effect free.
func (b *PromptBuilder) WithCounter(counter tokens.Counter) *PromptBuilder {
	b.counter = counter
	return b
}

// WithExtensions sets the hook pipeline.
func (b *PromptBuilder) WithExtensions(extensions Extensions) *PromptBuilder {
	b.extensions = extensions
	return b
}

// chatRenderer binds the chat template to the state's display names.
func (b *PromptBuilder) chatRenderer(state *State) Renderer {
	return func(messages []Message) (string, error) {
		return b.engine.RenderChat(state.ChatTemplate, messageData(messages), map[string]any{
			"name1":                 state.Name1,
			"name2":                 state.Name2,
			"add_generation_prompt": false,
		})
	}
}

// instructRenderer binds the instruction template.
func (b *PromptBuilder) instructRenderer(state *State) Renderer {
	return func(messages []Message) (string, error) {
		return b.engine.RenderChat(state.InstructionTemplate, messageData(messages), map[string]any{
			"add_generation_prompt": false,
		})
	}
}

// Build assembles the prompt for one generation request. It sequences
// messages from history and the new input, composes them through the
// mode's renderer, and drops the oldest eligible messages until the result
// fits the state's token budget. An empty message list is not an error: the
// build degrades to the minimal prompt.
//
// A ChatPrompt hook may short-circuit the entire build with a pre-built
// prompt.
func (b *PromptBuilder) Build(userInput string, state *State, opts Options) (*Prompt, error) {
	if text, ok := b.extensions.ApplyChatPrompt(userInput, state, opts); ok {
		return &Prompt{Text: text}, nil
	}

	messages := BuildMessages(userInput, state, opts.Continue, opts.Impersonate)

	renderer := b.chatRenderer(state)
	instruct := b.instructRenderer(state)
	if state.Mode == ModeInstruct {
		renderer = instruct
	}

	prompt, err := b.compose(messages, state, renderer, instruct, opts)
	if err != nil {
		return nil, err
	}

	// Drop the oldest eligible message and recompose until the prompt
	// fits. The system message survives as long as anything else can go.
	maxLength := tokens.MaxPromptTokens(state.TruncationLength, state.MaxNewTokens)
	for len(messages) > 0 && b.counter.Count(prompt) > maxLength {
		if len(messages) > 1 && messages[0].Role == RoleSystem {
			messages = slices.Delete(messages, 1, 2)
		} else {
			messages = slices.Delete(messages, 0, 1)
		}

		prompt, err = b.compose(messages, state, renderer, instruct, opts)
		if err != nil {
			return nil, err
		}
	}

	result := &Prompt{Text: prompt}
	if opts.ReturnRows {
		result.Rows = contents(messages)
	}
	return result, nil
}

// compose renders one prompt from the current message list. Continuation
// strips the suffix that would close the last message so it can be extended
// in place; chat-instruct nests the chat-rendered transcript inside an
// instruction-rendered command pair and leaves the assistant turn open.
func (b *PromptBuilder) compose(messages []Message, state *State, renderer, instruct Renderer, opts Options) (string, error) {
	inner := messages
	if state.Mode == ModeChatInstruct && opts.Continue && len(inner) > 0 {
		inner = inner[:len(inner)-1]
	}

	prompt, err := renderer(inner)
	if err != nil {
		return "", err
	}

	if state.Mode == ModeChatInstruct {
		prompt, err = b.composeChatInstruct(prompt, messages, state, renderer, instruct, opts)
		if err != nil {
			return "", err
		}
	} else {
		if opts.Continue {
			_, suffix, err := GenerationPrompt(renderer, opts.Impersonate, true)
			if err != nil {
				return "", err
			}
			prompt = trimLength(prompt, suffix)
		} else {
			prefix, _, err := GenerationPrompt(renderer, opts.Impersonate, true)
			if err != nil {
				return "", err
			}
			if state.Mode == ModeChat && !opts.Impersonate {
				prefix = b.extensions.ApplyBotPrefix(prefix, state)
			}
			prompt += prefix
		}
	}

	return removeExtraBOS(prompt), nil
}

// composeChatInstruct performs the outer half of the two-level chat-instruct
// composition: the inner chat-rendered prompt is substituted into the
// command template, paired with the open assistant prefix, and rendered
// through the instruction template with its closing suffix stripped.
func (b *PromptBuilder) composeChatInstruct(prompt string, messages []Message, state *State, renderer, instruct Renderer, opts Options) (string, error) {
	var outer []Message
	if strings.TrimSpace(state.CustomSystemMessage) != "" {
		outer = append(outer, Message{Role: RoleSystem, Content: state.CustomSystemMessage})
	}

	prompt = removeExtraBOS(prompt)

	character := state.Name2
	if opts.Impersonate {
		character = state.Name1
	}
	command := state.ChatInstructCommand
	command = strings.ReplaceAll(command, "<|character|>", character)
	command = strings.ReplaceAll(command, "<|prompt|>", prompt)

	var prefix string
	if opts.Continue {
		var err error
		prefix, _, err = GenerationPrompt(renderer, opts.Impersonate, false)
		if err != nil {
			return "", err
		}
		if len(messages) > 0 {
			prefix += messages[len(messages)-1].Content
		}
	} else {
		var err error
		prefix, _, err = GenerationPrompt(renderer, opts.Impersonate, true)
		if err != nil {
			return "", err
		}
		if !opts.Impersonate {
			prefix = b.extensions.ApplyBotPrefix(prefix, state)
		}
	}

	outer = append(outer,
		Message{Role: RoleUser, Content: command},
		Message{Role: RoleAssistant, Content: prefix},
	)

	rendered, err := instruct(outer)
	if err != nil {
		return "", err
	}

	// The instruction renderer closes the assistant turn; strip that
	// suffix so generation continues from the open prefix.
	_, suffix, err := GenerationPrompt(instruct, false, true)
	if err != nil {
		return "", err
	}
	return trimLength(rendered, suffix), nil
}

// trimLength removes len(suffix) characters from the end of prompt,
// mirroring a renderer-appended suffix regardless of its exact content.
func trimLength(prompt, suffix string) string {
	if len(suffix) == 0 || len(prompt) < len(suffix) {
		return prompt
	}
	return prompt[:len(prompt)-len(suffix)]
}

// removeExtraBOS collapses any run of leading beginning-of-text markers.
// The operation is idempotent.
func removeExtraBOS(prompt string) string {
	for {
		stripped := false
		for _, bos := range bosTokens {
			for strings.HasPrefix(prompt, bos) {
				prompt = prompt[len(bos):]
				stripped = true
			}
		}
		if !stripped {
			return prompt
		}
	}
}
