// Package apperr holds the error categories surfaced by services and mapped
// to HTTP status codes by the api package.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is returned when input fails a field constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when a record addressed by id does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ConfigurationError is returned when a required collaborator (document
// store, blob storage, language model) was never configured.
type ConfigurationError struct {
	Component string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Component)
}

// StoreError wraps a failure from the document store or another provider
// with the operation and record it concerned.
type StoreError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *StoreError) Error() string {
	var b strings.Builder
	b.WriteString("failed to ")
	b.WriteString(e.Op)
	b.WriteString(" ")
	b.WriteString(e.Resource)
	if e.ID != "" {
		fmt.Fprintf(&b, " %q", e.ID)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
