package file

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrPathRequired = errors.New("path is required")
	ErrFileTooLarge = errors.New("file too large")
)

// NotFoundError is returned when a file or directory does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// DecodeError is returned when a file's content is binary or not valid UTF-8.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("file is not valid UTF-8 text: %s", e.Path)
}

// TextNotFoundError is returned when the literal substitution target is not a
// substring of the file's current content.
type TextNotFoundError struct {
	Text string
}

func (e *TextNotFoundError) Error() string {
	return fmt.Sprintf("text not found in file: %s", e.Text)
}
