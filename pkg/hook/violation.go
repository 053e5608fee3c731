package hook

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSchemaViolation marks every schema validation failure. Callers can
// classify with errors.Is(err, ErrSchemaViolation) or extract details with
// errors.As into *SchemaError.
var ErrSchemaViolation = errors.New("schema violation")

// ViolationKind classifies a single field-level schema violation.
type ViolationKind string

const (
	// ViolationRequiredFieldMissing indicates a required field is absent.
	ViolationRequiredFieldMissing ViolationKind = "required_field_missing"

	// ViolationTypeMismatch indicates a field has the wrong JSON type.
	ViolationTypeMismatch ViolationKind = "type_mismatch"

	// ViolationDiscriminatorMismatch indicates hook_event_name does not
	// match the kind owning the concrete schema.
	ViolationDiscriminatorMismatch ViolationKind = "discriminator_mismatch"

	// ViolationWrongShape indicates the top-level JSON value is not an
	// object.
	ViolationWrongShape ViolationKind = "wrong_top_level_shape"
)

// FieldViolation describes one schema violation at a dotted field path.
type FieldViolation struct {
	// Field is the dotted path of the offending field. Empty for
	// top-level shape violations.
	Field string

	// Kind classifies the violation.
	Kind ViolationKind

	// Message is a human-readable description.
	Message string
}

// String returns "field: message", or just the message for shape violations.
func (v FieldViolation) String() string {
	if v.Field == "" {
		return v.Message
	}

	return v.Field + ": " + v.Message
}

// SchemaError aggregates every field-level violation detected while
// validating one payload against a concrete event schema.
type SchemaError struct {
	// EventName is the wire tag of the schema being validated, when known.
	EventName string

	// Violations holds all detected violations, not just the first.
	Violations []FieldViolation

	// RawInput is the original input, kept for diagnostics. Set by the
	// parser; empty for direct construction.
	RawInput string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}

	if e.EventName != "" {
		return fmt.Sprintf(
			"validation failed for %s event: %s",
			e.EventName,
			strings.Join(parts, "; "),
		)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// newSchemaError wraps violations into a SchemaError marked with
// ErrSchemaViolation.
func newSchemaError(eventName string, violations []FieldViolation) error {
	return errors.Mark(
		&SchemaError{EventName: eventName, Violations: violations},
		ErrSchemaViolation,
	)
}

// jsonTypeName reports the JSON type of a decoded value, for messages that
// state the actual runtime shape observed.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// fieldSet validates a decoded JSON object against one concrete event
// schema, aggregating violations instead of stopping at the first.
type fieldSet struct {
	fields     map[string]any
	want       EventType
	consumed   map[string]struct{}
	violations []FieldViolation
}

func newFieldSet(fields map[string]any, want EventType) *fieldSet {
	return &fieldSet{
		fields:   fields,
		want:     want,
		consumed: make(map[string]struct{}),
	}
}

func (f *fieldSet) violate(field string, kind ViolationKind, message string) {
	f.violations = append(f.violations, FieldViolation{
		Field:   field,
		Kind:    kind,
		Message: message,
	})
}

// base reads the fields required on every event kind and checks the
// discriminator invariant.
func (f *fieldSet) base() BaseEvent {
	b := BaseEvent{
		SessionID:      f.requireString("session_id"),
		TranscriptPath: f.requireString("transcript_path"),
		Cwd:            f.requireString("cwd"),
		HookEventName:  f.want,
		ToolInput:      f.optionalObject("tool_input"),
		Metadata:       f.optionalObject("metadata"),
	}

	f.discriminator()

	return b
}

// discriminator enforces that hook_event_name equals the schema's own kind.
// Distinct from dispatch-table routing: direct construction bypasses the
// parser, so the check lives here.
func (f *fieldSet) discriminator() {
	const key = "hook_event_name"

	f.consumed[key] = struct{}{}

	raw, ok := f.fields[key]
	if !ok {
		f.violate(key, ViolationRequiredFieldMissing, "required field missing")
		return
	}

	name, ok := raw.(string)
	if !ok {
		f.violate(key, ViolationTypeMismatch,
			"expected string, got "+jsonTypeName(raw))
		return
	}

	if name == "" {
		f.violate(key, ViolationRequiredFieldMissing, "required field missing")
		return
	}

	if name != f.want.String() {
		f.violate(key, ViolationDiscriminatorMismatch,
			fmt.Sprintf("must be %q, got %q", f.want.String(), name))
	}
}

func (f *fieldSet) requireString(key string) string {
	f.consumed[key] = struct{}{}

	raw, ok := f.fields[key]
	if !ok {
		f.violate(key, ViolationRequiredFieldMissing, "required field missing")
		return ""
	}

	s, ok := raw.(string)
	if !ok {
		f.violate(key, ViolationTypeMismatch,
			"expected string, got "+jsonTypeName(raw))

		return ""
	}

	return s
}

func (f *fieldSet) requireBool(key string) bool {
	f.consumed[key] = struct{}{}

	raw, ok := f.fields[key]
	if !ok {
		f.violate(key, ViolationRequiredFieldMissing, "required field missing")
		return false
	}

	b, ok := raw.(bool)
	if !ok {
		f.violate(key, ViolationTypeMismatch,
			"expected boolean, got "+jsonTypeName(raw))

		return false
	}

	return b
}

// optionalString treats an absent key and an explicit null the same way:
// the field stays unset.
func (f *fieldSet) optionalString(key string) *string {
	f.consumed[key] = struct{}{}

	raw, ok := f.fields[key]
	if !ok || raw == nil {
		return nil
	}

	s, ok := raw.(string)
	if !ok {
		f.violate(key, ViolationTypeMismatch,
			"expected string or null, got "+jsonTypeName(raw))

		return nil
	}

	return &s
}

func (f *fieldSet) optionalObject(key string) map[string]any {
	f.consumed[key] = struct{}{}

	raw, ok := f.fields[key]
	if !ok || raw == nil {
		return nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		f.violate(key, ViolationTypeMismatch,
			"expected object or null, got "+jsonTypeName(raw))

		return nil
	}

	return m
}

// extras returns every top-level field the schema did not consume,
// preserved uninterpreted.
func (f *fieldSet) extras() map[string]any {
	var extra map[string]any

	for k, v := range f.fields {
		if _, ok := f.consumed[k]; ok {
			continue
		}

		if extra == nil {
			extra = make(map[string]any)
		}

		extra[k] = v
	}

	return extra
}

// err returns the aggregated SchemaError, or nil when validation passed.
func (f *fieldSet) err() error {
	if len(f.violations) == 0 {
		return nil
	}

	return newSchemaError(f.want.String(), f.violations)
}
