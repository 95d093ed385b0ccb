// Package tokens provides token counting and prompt budget computation.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text. This provides a fast
// estimation without requiring a model-specific tokenizer; plug a real
// tokenizer in with CounterFunc when exact counts matter.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// Adapting a model tokenizer:
//
//	counter := tokens.CounterFunc(func(s string) int {
//	    return len(tok.Encode(s))
//	})
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Budget
//
// Budget splits a model's context window between the prompt and the output
// reserved for generation:
//
//	budget := tokens.NewBudget(8192, 512)
//	budget.MaxPrompt()          // 7680 tokens available to the prompt
//	budget.Fits(prompt, counter)
//
// The prompt assembly loop in the chat package trims history until the
// rendered prompt fits MaxPrompt.
//
// # Model Limits
//
// Get context window sizes for common local models:
//
//	limit := tokens.GetModelLimit("llama-3")   // 8192
//	limit := tokens.GetModelLimit("unknown")   // 4096 (default)
//
// See ModelLimits for the complete map of model context windows.
package tokens
