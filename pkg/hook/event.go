// Package hook defines the Claude Code hook event schema and response types.
package hook

//go:generate enumer -type=EventType -trimprefix=EventType -json -text
//go:generate go run github.com/smykla-skalski/hookwire/tools/enumerfix eventtype_enumer.go
//go:generate enumer -type=Decision -trimprefix=Decision -transform=lower -json -text
//go:generate go run github.com/smykla-skalski/hookwire/tools/enumerfix decision_enumer.go

// EventType represents the type of hook event. The string form of each
// value is the exact wire tag carried in the hook_event_name field.
type EventType int

const (
	// EventTypeUnknown represents an unknown event type.
	EventTypeUnknown EventType = iota

	// EventTypePreToolUse is triggered before a tool is executed.
	EventTypePreToolUse

	// EventTypePostToolUse is triggered after a tool is executed.
	EventTypePostToolUse

	// EventTypeNotification is triggered when Claude sends a notification.
	EventTypeNotification

	// EventTypeUserPromptSubmit is triggered when the user submits a prompt.
	EventTypeUserPromptSubmit

	// EventTypeStop is triggered when Claude finishes responding.
	EventTypeStop

	// EventTypeSubagentStop is triggered when a subagent task completes.
	EventTypeSubagentStop

	// EventTypePreCompact is triggered before conversation compaction.
	EventTypePreCompact
)

// EventTypes returns the supported event types in declaration order.
// EventTypeUnknown is excluded; it is a parse-failure placeholder, not a
// wire value.
func EventTypes() []EventType {
	return []EventType{
		EventTypePreToolUse,
		EventTypePostToolUse,
		EventTypeNotification,
		EventTypeUserPromptSubmit,
		EventTypeStop,
		EventTypeSubagentStop,
		EventTypePreCompact,
	}
}
