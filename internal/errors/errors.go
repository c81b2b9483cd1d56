package errors

import (
	"encoding/json"
	"fmt"
)

// ValidationErr signals a business rule violation and maps to 400 on the
// HTTP boundary
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

// MarshalJSON implements json.Marshaler
func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewValidationErr builds validation error for target entity
func NewValidationErr(target string, msg string) error {
	return &ValidationErr{
		target:  target,
		message: msg,
	}
}

// NotFoundErr signals a missing record and maps to 404 on the HTTP boundary
type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

// NewNotFoundErr builds not found error for entity, e.g. "Company not found"
func NewNotFoundErr(entity string) *NotFoundErr {
	return &NotFoundErr{message: fmt.Sprintf("%s not found", entity)}
}
