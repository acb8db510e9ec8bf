package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors
	ErrLoad       = errors.New("data source unreadable")
	ErrEmptyTable = errors.New("table has no data rows")

	// Schema errors
	ErrSchema        = errors.New("inconsistent table shape")
	ErrUnknownColumn = errors.New("column not found in table")

	// Rendering errors
	ErrRender = errors.New("chart rendering failed")
)

// Error constructors with context
func NewLoadError(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrLoad, source, err)
}

func NewSchemaError(reason string) error {
	return fmt.Errorf("%w: %s", ErrSchema, reason)
}

func NewRenderError(title string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRender, title, err)
}

// Error checking helpers
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoad) || errors.Is(err, ErrEmptyTable)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema) || errors.Is(err, ErrUnknownColumn)
}

func IsRenderError(err error) bool {
	return errors.Is(err, ErrRender)
}
