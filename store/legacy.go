package store

import (
	"fmt"
	"strings"
)

// masterTemplate is the chat-template skeleton legacy formats are converted
// into. The <|...|> placeholders are replaced with the literal boundary
// fragments recovered from the legacy fields.
const masterTemplate = `{{$found := false}}` +
	`{{range .messages}}{{if eq .role "system"}}{{$found = true}}{{end}}{{end}}` +
	`{{if not $found}}<|PRE-SYSTEM|><|SYSTEM-MESSAGE|><|POST-SYSTEM|>{{end}}` +
	`{{range .messages}}` +
	`{{if eq .role "system"}}<|PRE-SYSTEM|>{{.content}}<|POST-SYSTEM|>` +
	`{{else if eq .role "user"}}<|PRE-USER|>{{.content}}<|POST-USER|>` +
	`{{else}}<|PRE-ASSISTANT|>{{.content}}<|POST-ASSISTANT|>{{end}}` +
	`{{end}}` +
	`{{if .add_generation_prompt}}<|PRE-ASSISTANT-GENERATE|>{{end}}`

// TemplateFromLegacy converts the old turn-template instruction format into
// a chat template in the engine's syntax.
//
// The legacy format describes one dialogue turn as a single string with
// <|user|>, <|user-message|>, <|bot|>, and <|bot-message|> markers, plus an
// optional context wrapping a <|system-message|> marker. The boundary
// fragments around each marker are cut out and substituted into a generic
// message-loop template, so a converted template renders byte-identically
// to the old hand-assembled format.
func TemplateFromLegacy(f *TemplateFile) (string, error) {
	turn := f.TurnTemplate
	userIdx := strings.Index(turn, "<|user-message|>")
	botIdx := strings.Index(turn, "<|bot-message|>")
	if userIdx < 0 || botIdx < 0 {
		return "", fmt.Errorf("%w: turn_template needs <|user-message|> and <|bot-message|>", ErrLegacy)
	}

	var preSystem, postSystem string
	if before, after, found := strings.Cut(f.Context, "<|system-message|>"); found {
		preSystem, postSystem = before, after
	}

	userPart, botPart, _ := strings.Cut(turn, "<|user-message|>")
	preUser := strings.ReplaceAll(userPart, "<|user|>", f.User)

	postUser, botTail, found := strings.Cut(botPart, "<|bot|>")
	if !found {
		return "", fmt.Errorf("%w: turn_template needs <|bot|>", ErrLegacy)
	}

	botPrefix, postAssistant, _ := strings.Cut(botTail, "<|bot-message|>")
	preAssistant := strings.ReplaceAll("<|bot|>"+botPrefix, "<|bot|>", f.Bot)

	result := masterTemplate
	result = strings.ReplaceAll(result, "<|SYSTEM-MESSAGE|>", f.SystemMessage)
	result = strings.ReplaceAll(result, "<|PRE-SYSTEM|>", preSystem)
	result = strings.ReplaceAll(result, "<|POST-SYSTEM|>", postSystem)
	result = strings.ReplaceAll(result, "<|PRE-USER|>", preUser)
	result = strings.ReplaceAll(result, "<|POST-USER|>", postUser)
	result = strings.ReplaceAll(result, "<|PRE-ASSISTANT|>", preAssistant)
	result = strings.ReplaceAll(result, "<|PRE-ASSISTANT-GENERATE|>", strings.TrimRight(preAssistant, " "))
	result = strings.ReplaceAll(result, "<|POST-ASSISTANT|>", postAssistant)

	return strings.TrimSpace(result), nil
}
