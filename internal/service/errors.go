package service

import (
	"errors"
	"fmt"
)

var (
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrNoFeedback         = errors.New("no feedback found for this interview")
	ErrInvalidModelOutput = errors.New("invalid model output")
	ErrLLMUnavailable     = errors.New("gemini client not initialized")
)

// ModelOutputError reports a model reply that could not be used. Raw is the
// fence-stripped text so callers can surface it.
type ModelOutputError struct {
	Raw    string
	Reason string
}

func (e *ModelOutputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidModelOutput, e.Reason)
}

func (e *ModelOutputError) Unwrap() error {
	return ErrInvalidModelOutput
}
