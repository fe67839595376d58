// Package errs defines the error taxonomy shared by the wizard core.
//
// Each type carries a message that is safe to show to the end user.
// GenerationError additionally carries the raw model output for logging;
// that detail must never reach a caller-facing message.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing caller input.
// Its message is surfaced to the user verbatim.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

// Validation creates a ValidationError for the given field.
func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// GenerationError reports that the model returned unparseable or
// incomplete structured output. Detail holds the raw model text (or a
// wrapped parse error) for debug logging; Error() never includes it.
type GenerationError struct {
	Stage  string // "summarize" or "draft"
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: model returned an unusable response, please try again", e.Stage)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generation creates a GenerationError. detail is kept for logs only.
func Generation(stage, detail string, err error) error {
	return &GenerationError{Stage: stage, Detail: detail, Err: err}
}

// ConfigurationError reports that a publishing mode was selected without
// the setup it requires.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// AuthenticationError reports that the version-control CLI is not logged
// in. Remedy names the command that fixes it.
type AuthenticationError struct {
	Msg    string
	Remedy string
}

func (e *AuthenticationError) Error() string {
	if e.Remedy != "" {
		return fmt.Sprintf("%s. Run: %s", e.Msg, e.Remedy)
	}
	return e.Msg
}

// IOError reports an artifact write failure during materialization.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NoChangesError reports that the staged diff was empty after adding the
// submission directory. Distinct from the degraded-success path.
type NoChangesError struct {
	Dir string
}

func (e *NoChangesError) Error() string {
	return fmt.Sprintf("no changes to commit under %s", e.Dir)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsGeneration reports whether err is a GenerationError.
func IsGeneration(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsAuthentication reports whether err is an AuthenticationError.
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}
