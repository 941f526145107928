package message

import "errors"

var (
	// ErrMissingTemplate is returned when no template is registered for a key.
	ErrMissingTemplate = errors.New("message template not found")

	// ErrInvalidKey is returned when registering a template under an empty key.
	ErrInvalidKey = errors.New("message key is empty")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// File operations
	ErrUnsupportedFormat = errors.New("unsupported message file format")
	ErrFailedToReadFile  = errors.New("failed to read message file")
)
