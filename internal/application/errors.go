package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrStale      = errors.New("reference out of date")
	ErrOutOfOrder = errors.New("sections out of order")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StaleError reports a committed reference that no longer matches its sources
type StaleError struct {
	Path    string
	Missing bool // the reference file does not exist yet
}

func (e *StaleError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s does not exist", e.Path)
	}
	return fmt.Sprintf("%s does not match its sources", e.Path)
}

func (e *StaleError) Is(target error) bool {
	return target == ErrStale
}

// OrderError reports a rendered document whose numbered headings do not follow the manifest
type OrderError struct {
	Expected int
	Got      []int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("expected %d numbered sections in increasing order, got %v", e.Expected, e.Got)
}

func (e *OrderError) Is(target error) bool {
	return target == ErrOutOfOrder
}
