package models

import "fmt"

// ValidationError is a field-level rejection of a write. It maps to a 400
// with the offending field named, and never leaves partial state behind.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError covers both a missing row and a row owned by someone else.
// Callers are never told which, so ownership cannot be probed by id.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}
