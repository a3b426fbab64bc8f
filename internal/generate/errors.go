package generate

import (
	"fmt"
	"strings"
)

// FieldError is one failed profile check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports profile fields that failed client-side checks.
// No network call is made when validation fails.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "invalid profile: " + strings.Join(msgs, "; ")
}

// Has reports whether the named field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// TimeoutError means no response arrived within the bounded wait. The
// message carries user-facing guidance: a cold server typically answers
// faster on retry.
type TimeoutError struct {
	Wait string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("generation timed out after %s: the server may be waking up from a cold start; retries are typically faster", e.Wait)
}

// RemoteError is a non-success response from the generation service, or a
// response body that could not be parsed as a plan. Message carries the
// server's diagnostic text when available.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generation failed (status %d)", e.Status)
	}
	return fmt.Sprintf("generation failed (status %d): %s", e.Status, e.Message)
}
