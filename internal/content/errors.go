package content

import "errors"

// Sentinel errors for content loading and lookup.
var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrShapeMismatch   = errors.New("content bundles differ in shape")
	ErrInvalidBundle   = errors.New("content bundle failed schema validation")
	ErrInvalidPartner  = errors.New("invalid partner entry")
)
