package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInput is returned by the analyzer when a request carries
// neither a description nor an image. No external call is made.
var ErrMissingInput = errors.New("missing input data")

// ErrNotFound maps gorm.ErrRecordNotFound out of the persistence layer.
var ErrNotFound = errors.New("record not found")

// MissingFieldsError reports which required request fields were absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidAIResponseError means the completion text failed to parse or
// failed the shape contract. Raw carries the offending text so the caller
// can return it for diagnosis instead of silently defaulting.
type InvalidAIResponseError struct {
	Reason string
	Raw    string
}

func (e *InvalidAIResponseError) Error() string {
	return fmt.Sprintf("invalid AI response: %s", e.Reason)
}
