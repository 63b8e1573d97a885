// Package errors defines the error taxonomy of the search server.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when a text (document body, stop word,
	// query) contains a disallowed control character.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidArgument is returned on structural violations: negative or
	// duplicate document ids, malformed minus words.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDocumentNotFound is returned when an operation references an
	// unknown document id.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrPositionOutOfRange is returned when an insertion-order position is
	// outside the known range.
	ErrPositionOutOfRange = errors.New("position out of range")
)

// InputError represents an invalid-input error with context
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInputError creates a new InputError
func NewInputError(message string) *InputError {
	return &InputError{Message: message}
}

// ArgumentError represents an invalid-argument error with context
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid argument '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates a new ArgumentError
func NewArgumentError(field, message string) *ArgumentError {
	return &ArgumentError{Field: field, Message: message}
}

// DocumentNotFoundError represents a document not found error with context
type DocumentNotFoundError struct {
	DocumentID int
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document with id %d not found", e.DocumentID)
}

func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrDocumentNotFound
}

// NewDocumentNotFoundError creates a new DocumentNotFoundError
func NewDocumentNotFoundError(documentID int) *DocumentNotFoundError {
	return &DocumentNotFoundError{DocumentID: documentID}
}

// PositionOutOfRangeError represents an out-of-range insertion-order position
type PositionOutOfRangeError struct {
	Position int
	Count    int
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d is outside [0, %d)", e.Position, e.Count)
}

func (e *PositionOutOfRangeError) Is(target error) bool {
	return target == ErrPositionOutOfRange
}

// NewPositionOutOfRangeError creates a new PositionOutOfRangeError
func NewPositionOutOfRangeError(position, count int) *PositionOutOfRangeError {
	return &PositionOutOfRangeError{Position: position, Count: count}
}
