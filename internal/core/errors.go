package core

import "errors"

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrDefinitionNotFound indicates the definition file does not exist
	ErrDefinitionNotFound = errors.New("definition file not found")

	// ErrDefinitionTooLarge indicates the definition file exceeds maxDefinitionFileSize
	ErrDefinitionTooLarge = errors.New("definition file exceeds maximum size")

	// ErrInvalidDefinition indicates the definition could not be parsed
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrDuplicateLanguage indicates two variants declare the same language key
	ErrDuplicateLanguage = errors.New("duplicate language key")

	// ErrUnknownCheck indicates --only or --except named a check the engine does not register
	ErrUnknownCheck = errors.New("unknown check")
)

// Error message templates for formatted errors.
// Use with fmt.Errorf() to create errors with context.
const (
	// ErrLanguageAuditMsg wraps an engine failure during one variant's run
	ErrLanguageAuditMsg = "audit language %s: %w"

	// ErrLoadDefinitionMsg wraps a failure to load a definition file
	ErrLoadDefinitionMsg = "load %s: %w"
)
