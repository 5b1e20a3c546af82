package search

import (
	"errors"
	"fmt"
)

var ErrPatternRequired = errors.New("pattern is required")

// NotFoundError is returned when the search root does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// InvalidPatternError is returned when a regex pattern does not compile.
type InvalidPatternError struct {
	Pattern string
	Cause   error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Cause)
}

func (e *InvalidPatternError) Unwrap() error { return e.Cause }
