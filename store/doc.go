// Package store loads instruction templates from files with explicit
// caching and invalidation.
//
// A Store serves templates by name from a directory of
// <name>.yaml|.yml|.json|.toml files. Each file either carries an
// instruction_template in the engine's syntax:
//
//	instruction_template: |-
//	  {{range .messages}}<|im_start|>{{.role}}
//	  {{.content}}<|im_end|>
//	  {{end}}{{if .add_generation_prompt}}<|im_start|>assistant
//	  {{end}}
//
// or the legacy turn-template fields, which TemplateFromLegacy converts on
// load:
//
//	user: "### Instruction:"
//	bot: "### Response:"
//	turn_template: "<|user|>\n<|user-message|>\n\n<|bot|>\n<|bot-message|>\n\n"
//	context: "Below is an instruction.\n\n<|system-message|>\n\n"
//
// # Caching
//
// Loaded templates are cached by name. The cache is invalidated
// automatically when the directory changes (fsnotify) and manually via
// Invalidate, so entries track their files instead of living for the
// process lifetime.
//
//	s, err := store.Open("instruction-templates")
//	defer s.Close()
//	tmpl, err := s.InstructionTemplate("Alpaca")
//
// # Validation
//
// FileSchema exposes a JSON schema for the file format, for frontends that
// validate user-supplied templates.
//
// # Location
//
// This package is part of the chatkit library:
//
//	import "github.com/randalmurphal/chatkit/store"
package store
