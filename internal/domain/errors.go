package domain

import "errors"

var (
	// ErrDefinitionNotFound means no talent tree path file ships for a class/spec.
	ErrDefinitionNotFound = errors.New("talent tree path definitions not found")
	// ErrMalformedDefinitions means the definitions file could not be parsed.
	ErrMalformedDefinitions = errors.New("malformed talent tree path definitions")
	// ErrAuxiliaryResourceMissing means a custom text flag is set but its file is absent.
	ErrAuxiliaryResourceMissing = errors.New("auxiliary resource missing")
)
