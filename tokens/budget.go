package tokens

// DefaultContextWindow is the fallback context window size when the model
// is unknown.
const DefaultContextWindow = 4096

// Budget describes how a model's context window is split between the
// prompt and the reserved generation output. The prompt assembly loop trims
// history until the rendered prompt fits MaxPrompt.
type Budget struct {
	// ContextWindow is the model's total context length in tokens.
	ContextWindow int

	// MaxNewTokens is the output length reserved for generation.
	MaxNewTokens int
}

// NewBudget creates a budget for the given context window and reserved
// output length. A non-positive context window falls back to
// DefaultContextWindow.
func NewBudget(contextWindow, maxNewTokens int) *Budget {
	if contextWindow <= 0 {
		contextWindow = DefaultContextWindow
	}
	if maxNewTokens < 0 {
		maxNewTokens = 0
	}
	return &Budget{
		ContextWindow: contextWindow,
		MaxNewTokens:  maxNewTokens,
	}
}

// MaxPrompt returns the token budget available to the prompt: the context
// window minus the reserved output length, never below zero.
func (b *Budget) MaxPrompt() int {
	remaining := b.ContextWindow - b.MaxNewTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Fits returns true if the text's token count fits the prompt budget.
func (b *Budget) Fits(text string, counter Counter) bool {
	return counter.FitsInLimit(text, b.MaxPrompt())
}

// MaxPromptTokens is a convenience for NewBudget(...).MaxPrompt().
func MaxPromptTokens(contextWindow, maxNewTokens int) int {
	return NewBudget(contextWindow, maxNewTokens).MaxPrompt()
}

// ModelLimits contains context window sizes for common local models.
var ModelLimits = map[string]int{
	// Llama family
	"llama-2":   4096,
	"llama-3":   8192,
	"llama-3.1": 131072,

	// Mistral family
	"mistral-7b":   32768,
	"mixtral-8x7b": 32768,

	// Qwen family
	"qwen2-7b":   32768,
	"qwen2.5-7b": 32768,

	// Default fallback
	"default": DefaultContextWindow,
}

// GetModelLimit returns the context window for a model, or a default if not found.
func GetModelLimit(model string) int {
	if limit, ok := ModelLimits[model]; ok {
		return limit
	}
	return ModelLimits["default"]
}
