package parser

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/hookwire/pkg/hook"
)

// constructor builds a concrete event from decoded JSON fields.
type constructor func(fields map[string]any) (hook.Event, error)

func construct[T hook.Event](ctor func(map[string]any) (T, error)) constructor {
	return func(fields map[string]any) (hook.Event, error) {
		evt, err := ctor(fields)
		if err != nil {
			return nil, err
		}

		return evt, nil
	}
}

// registry is the dispatch table from event kind to concrete schema.
// Total over the supported kinds by construction; a miss is a registration
// bug, not a runtime input problem.
var registry = map[hook.EventType]constructor{
	hook.EventTypePreToolUse:       construct(hook.NewPreToolUseEvent),
	hook.EventTypePostToolUse:      construct(hook.NewPostToolUseEvent),
	hook.EventTypeNotification:     construct(hook.NewNotificationEvent),
	hook.EventTypeUserPromptSubmit: construct(hook.NewUserPromptSubmitEvent),
	hook.EventTypeStop:             construct(hook.NewStopEvent),
	hook.EventTypeSubagentStop:     construct(hook.NewSubagentStopEvent),
	hook.EventTypePreCompact:       construct(hook.NewPreCompactEvent),
}

// kindsByTag resolves wire tags to kinds. Exact, case-sensitive match only:
// the casing of the 7 tags is part of the wire contract.
var kindsByTag = func() map[string]hook.EventType {
	m := make(map[string]hook.EventType, len(registry))
	for _, kind := range hook.EventTypes() {
		m[kind.String()] = kind
	}

	return m
}()

// Parse decodes and validates a raw JSON payload into a typed hook event.
//
// Failures are classified three ways, distinguishable via errors.Is/As:
// malformed JSON yields a *DecodeError (ErrInvalidJSON), structural and
// field-level problems yield a *hook.SchemaError (hook.ErrSchemaViolation),
// and an unrecognized hook_event_name yields a *UnsupportedKindError
// (ErrUnsupportedKind).
func Parse(raw string) (hook.Event, error) {
	return ParseBytes([]byte(raw))
}

// ParseBytes is Parse for hosts that hand over raw stdin bytes.
func ParseBytes(data []byte) (hook.Event, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, newDecodeError(string(data), err)
	}

	fields, ok := decoded.(map[string]any)
	if !ok {
		return nil, shapeError(decoded, string(data))
	}

	return parseFields(fields, string(data))
}

// ParseMap validates an already-decoded JSON object, for callers whose
// transport layer decodes once and reuses the value.
func ParseMap(fields map[string]any) (hook.Event, error) {
	return parseFields(fields, "")
}

func parseFields(fields map[string]any, raw string) (hook.Event, error) {
	kind, err := resolveKind(fields, raw)
	if err != nil {
		return nil, err
	}

	ctor, ok := registry[kind]
	if !ok {
		// Unreachable for any input: resolveKind only returns registered
		// kinds. A miss means the registry lost an entry.
		panic(fmt.Sprintf("parser: no constructor registered for %s", kind))
	}

	evt, err := ctor(fields)
	if err != nil {
		var schemaErr *hook.SchemaError
		if errors.As(err, &schemaErr) {
			schemaErr.RawInput = raw
		}

		return nil, err
	}

	return evt, nil
}

// resolveKind extracts and resolves the hook_event_name discriminator.
func resolveKind(fields map[string]any, raw string) (hook.EventType, error) {
	value, ok := fields["hook_event_name"]
	if !ok {
		return hook.EventTypeUnknown, schemaFieldError(raw, hook.FieldViolation{
			Field:   "hook_event_name",
			Kind:    hook.ViolationRequiredFieldMissing,
			Message: "required field missing",
		})
	}

	name, ok := value.(string)
	if !ok {
		return hook.EventTypeUnknown, schemaFieldError(raw, hook.FieldViolation{
			Field:   "hook_event_name",
			Kind:    hook.ViolationTypeMismatch,
			Message: "expected string, got " + jsonTypeName(value),
		})
	}

	if name == "" {
		return hook.EventTypeUnknown, schemaFieldError(raw, hook.FieldViolation{
			Field:   "hook_event_name",
			Kind:    hook.ViolationRequiredFieldMissing,
			Message: "required field missing",
		})
	}

	kind, ok := kindsByTag[name]
	if !ok {
		return hook.EventTypeUnknown, newUnsupportedKindError(name, raw)
	}

	return kind, nil
}

// SupportedKinds returns the supported event kinds in declaration order.
func SupportedKinds() []hook.EventType {
	return hook.EventTypes()
}

// IsSupportedKind reports whether value names a supported event kind.
// Accepts a hook.EventType or a raw string tag; anything else, including
// nil, is simply unsupported. Never returns an error.
func IsSupportedKind(value any) bool {
	switch v := value.(type) {
	case hook.EventType:
		_, ok := registry[v]
		return ok
	case string:
		_, ok := kindsByTag[v]
		return ok
	default:
		return false
	}
}

func shapeError(decoded any, raw string) error {
	return schemaFieldError(raw, hook.FieldViolation{
		Kind:    hook.ViolationWrongShape,
		Message: "expected a JSON object, got " + jsonTypeName(decoded),
	})
}

func schemaFieldError(raw string, violations ...hook.FieldViolation) error {
	return errors.Mark(
		&hook.SchemaError{Violations: violations, RawInput: raw},
		hook.ErrSchemaViolation,
	)
}

// jsonTypeName reports the JSON type of a decoded value.
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
