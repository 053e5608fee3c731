// Package config provides configuration schema types for the hookwire CLI.
// Configuration governs host-side policy only; parse semantics are fixed by
// the wire contract and never configurable.
package config

import (
	"github.com/cockroachdb/errors"
)

//go:generate enumer -type=UnknownEventPolicy -trimprefix=UnknownEventPolicy -transform=lower -json -text
//go:generate go run github.com/smykla-skalski/hookwire/tools/enumerfix unknowneventpolicy_enumer.go

// ErrInvalidUnknownEventPolicy is returned when an invalid policy value is
// provided.
var ErrInvalidUnknownEventPolicy = errors.New("invalid unknown_events policy")

// UnknownEventPolicy controls how the CLI treats payloads whose
// hook_event_name is outside the supported set.
type UnknownEventPolicy int

const (
	// UnknownEventPolicyIgnore lets unknown future event kinds pass with a
	// continue response. Default: unknown kinds are a forward-compatibility
	// case, not an error.
	UnknownEventPolicyIgnore UnknownEventPolicy = iota

	// UnknownEventPolicyReject blocks payloads declaring unknown kinds.
	UnknownEventPolicyReject
)

// ParseUnknownEventPolicy parses a string into an UnknownEventPolicy value.
func ParseUnknownEventPolicy(s string) (UnknownEventPolicy, error) {
	policy, err := UnknownEventPolicyString(s)
	if err != nil {
		return UnknownEventPolicyIgnore,
			errors.Wrapf(
				ErrInvalidUnknownEventPolicy,
				"%q, must be %q or %q",
				s,
				UnknownEventPolicyIgnore.String(),
				UnknownEventPolicyReject.String(),
			)
	}

	return policy, nil
}

// Config represents the root configuration for hookwire.
type Config struct {
	// Policy controls how parse outcomes map to responses.
	Policy *PolicyConfig `json:"policy,omitempty" koanf:"policy" toml:"policy,omitempty"`

	// Logging configures the CLI's structured file logging.
	Logging *LoggingConfig `json:"logging,omitempty" koanf:"logging" toml:"logging,omitempty"`
}

// PolicyConfig controls response behavior for parse outcomes.
type PolicyConfig struct {
	// UnknownEvents selects the lenient or strict handling of
	// unrecognized hook_event_name values.
	UnknownEvents UnknownEventPolicy `json:"unknown_events,omitempty" koanf:"unknown_events" toml:"unknown_events,omitempty"`

	// SuppressOutput hides feedback responses from the transcript.
	SuppressOutput bool `json:"suppress_output,omitempty" koanf:"suppress_output" toml:"suppress_output,omitempty"`
}

// LoggingConfig configures structured file logging.
type LoggingConfig struct {
	// Path is the log file location. Empty disables file logging.
	Path string `json:"path,omitempty" koanf:"path" toml:"path,omitempty"`

	// Debug enables info-level logging.
	Debug bool `json:"debug,omitempty" koanf:"debug" toml:"debug,omitempty"`

	// Trace enables debug-level logging.
	Trace bool `json:"trace,omitempty" koanf:"trace" toml:"trace,omitempty"`
}

// PolicyOrDefault returns the policy section, falling back to defaults.
func (c *Config) PolicyOrDefault() PolicyConfig {
	if c == nil || c.Policy == nil {
		return PolicyConfig{}
	}

	return *c.Policy
}

// LoggingOrDefault returns the logging section, falling back to defaults.
func (c *Config) LoggingOrDefault() LoggingConfig {
	if c == nil || c.Logging == nil {
		return LoggingConfig{}
	}

	return *c.Logging
}
