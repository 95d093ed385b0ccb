package template

import (
	"fmt"
	"strings"
	"text/template"
)

// RenderChat executes a chat template against an ordered message list.
//
// The messages are exposed to the template as ".messages", a slice of maps
// with "role" and "content" keys. Additional bindings (typically "name1",
// "name2", and "add_generation_prompt") are merged into the root data map.
//
// Unlike Render, RenderChat executes with missingkey=error: a template that
// references an undefined binding fails with ErrExecute instead of emitting
// "<no value>", since chat templates come from untrusted character and
// instruction files and silent placeholders would corrupt boundary probing.
func (e *Engine) RenderChat(templateStr string, messages []map[string]any, vars map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	data := map[string]any{
		"messages":              messages,
		"add_generation_prompt": false,
	}
	for k, v := range vars {
		data[k] = v
	}

	converted := convertSyntax(templateStr)

	tmpl, parseErr := template.New("chat").Funcs(e.funcs).Option("missingkey=error").Parse(converted)
	if parseErr != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, parseErr)
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, data); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}
