// Package errors defines the domain error taxonomy shared by services and
// handlers. Every business rejection carries a stable code so the HTTP layer
// can map it to a distinct status without string matching.
package errors

import "fmt"

// DomainError is a business-rule error with a stable machine-readable code.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithField returns a copy of the error annotated with the offending field.
func (e *DomainError) WithField(field string) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Field: field}
}

// Is lets errors.Is match sentinels by code, so annotated copies from
// WithField still compare equal to the originals.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}
