// Package parser turns raw hook payloads into typed hook events.
package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidJSON marks inputs that are not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrUnsupportedKind marks payloads whose hook_event_name is not a
	// known event kind. Kept distinct from schema violations so hosts can
	// ignore unknown future kinds while still rejecting malformed known
	// ones.
	ErrUnsupportedKind = errors.New("unsupported event kind")
)

// DecodeError reports malformed JSON input. It always carries the offending
// raw text for diagnostics.
type DecodeError struct {
	// RawInput is the original input text.
	RawInput string

	cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode JSON: %v", e.cause)
}

// Unwrap returns the underlying json decode error.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

func newDecodeError(raw string, cause error) error {
	return errors.Mark(&DecodeError{RawInput: raw, cause: cause}, ErrInvalidJSON)
}

// UnsupportedKindError reports a well-formed payload declaring an event
// kind outside the supported set.
type UnsupportedKindError struct {
	// Kind is the raw, unrecognized hook_event_name value.
	Kind string

	// RawInput is the original input text, when parsed from text.
	RawInput string
}

// Error implements the error interface.
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported event kind: %q", e.Kind)
}

func newUnsupportedKindError(kind, raw string) error {
	return errors.Mark(
		&UnsupportedKindError{Kind: kind, RawInput: raw},
		ErrUnsupportedKind,
	)
}
