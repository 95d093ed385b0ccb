// Package template provides sandboxed prompt template rendering.
//
// Two kinds of templates are supported: plain variable templates rendered
// with Render, and chat templates rendered with RenderChat against an
// ordered role/content message list. Both execute inside text/template with
// a fixed helper function table and no access to the filesystem, the
// network, or host objects beyond the bindings passed in. Template text may
// come from untrusted character or instruction files, so this restriction
// is a security boundary rather than a convenience.
//
// # Plain Templates
//
// Simple variables use double braces and a Handlebars-like syntax that is
// automatically converted before execution:
//
//	Hello, {{name}}!
//	{{#if urgent}}URGENT: {{/if}}{{title}}
//	{{#each items}}{{.}} {{/each}}
//
// # Chat Templates
//
// Chat templates iterate the ".messages" binding, where each message is a
// map with "role" and "content" keys:
//
//	{{range .messages}}<|im_start|>{{.role}}
//	{{.content}}<|im_end|>
//	{{end}}{{if .add_generation_prompt}}<|im_start|>assistant
//	{{end}}
//
// Display names are available as ".name1" (user) and ".name2" (assistant)
// when the caller binds them; inside a range over ".messages" they are
// reached through the root as "$.name1". Chat templates execute strictly:
// referencing an undefined binding is an error, not an empty substitution.
//
// # Built-in Functions
//
//   - truncate(s string, maxLen int) string - Cut string to max length with ellipsis
//   - upper(s string) string - Convert to uppercase
//   - lower(s string) string - Convert to lowercase
//   - trim(s string) string - Remove leading/trailing whitespace
//   - split(s, sep string) []string - Split string by separator
//   - join(slice []string, sep string) string - Join strings with separator
//   - replace(s, old, new string) string - Replace all occurrences
//   - contains(s, substr string) bool - Check if string contains substring
//   - hasPrefix(s, prefix string) bool - Check if string starts with prefix
//   - hasSuffix(s, suffix string) bool - Check if string ends with suffix
//   - default(val, defaultVal any) any - Return default if val is nil/empty
//
// # Example
//
//	engine := template.NewEngine()
//	result, err := engine.Render("Hello, {{name}}!", map[string]any{"name": "World"})
//	// result: "Hello, World!"
//
// # Errors
//
// Failures are reported through the sentinel errors ErrEmpty, ErrParse,
// ErrExecute, and ErrVariable, wrapped with detail. They always propagate
// to the caller; there is no fallback rendering.
//
// # Location
//
// This package is part of the chatkit library:
//
//	import "github.com/randalmurphal/chatkit/template"
package template
