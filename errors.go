package dentdown

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkup       = errors.New("markup content cannot be empty")
	ErrUnterminatedBlock = errors.New("unterminated block")
	ErrHighlight         = errors.New("syntax highlighting failed")
	ErrInvalidTitle      = errors.New("invalid document title")
)
