package store

import "errors"

// Sentinel errors for template store operations.
var (
	// ErrNotFound is returned when no template file exists for the name.
	ErrNotFound = errors.New("instruction template not found")

	// ErrFormat is returned when a template file cannot be parsed or
	// carries neither an instruction template nor a legacy turn template.
	ErrFormat = errors.New("invalid template file")

	// ErrLegacy is returned when a legacy turn template is missing the
	// markers needed for conversion.
	ErrLegacy = errors.New("legacy template missing required markers")
)
