package template

import (
	"strings"
	"text/template"
)

// defaultFuncs returns the built-in template functions. The set is fixed at
// engine creation; templates cannot reach anything outside it.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate":  truncate,
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trim":      strings.TrimSpace,
		"split":     strings.Split,
		"join":      strings.Join,
		"replace":   strings.ReplaceAll,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"default":   defaultValue,
	}
}

// truncate cuts a string to the specified maximum length.
// If the string is longer than maxLen, it is truncated and "..." is appended.
// For maxLen <= 3, no ellipsis is added (the string is simply cut).
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// defaultValue returns the default if the value is nil or an empty string.
// For other types (including zero values like 0), the original value is returned.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}
