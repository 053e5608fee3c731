package hook

import "encoding/json"

// Event is the closed set of concrete hook events. Every implementation
// embeds BaseEvent and is produced by its field-map constructor, which
// guarantees the discriminator invariant: Kind() always equals the
// hook_event_name the event was built with.
type Event interface {
	json.Marshaler

	// Kind returns the event type that owns the concrete schema.
	Kind() EventType

	// fields returns the full wire representation, including preserved
	// extra fields. Unexported to keep the event set closed.
	fields() map[string]any
}

// BaseEvent carries the fields required on every hook event.
type BaseEvent struct {
	// SessionID is the Claude Code session identifier.
	SessionID string

	// TranscriptPath is the path to the conversation transcript.
	TranscriptPath string

	// Cwd is the current working directory of the session.
	Cwd string

	// HookEventName is the wire discriminator. Constructors enforce that
	// it matches the concrete event's own kind.
	HookEventName EventType

	// ToolInput contains tool input parameters, when present. The shape
	// is intentionally unconstrained.
	ToolInput map[string]any

	// Metadata contains additional event metadata, when present.
	Metadata map[string]any

	// Extra preserves unknown top-level fields without interpreting them.
	// Forward-compatibility contract: future fields are tolerated, kept,
	// and re-emitted on serialization.
	Extra map[string]any
}

func (b *BaseEvent) baseFields() map[string]any {
	m := make(map[string]any, len(b.Extra)+6)
	for k, v := range b.Extra {
		m[k] = v
	}

	m["session_id"] = b.SessionID
	m["transcript_path"] = b.TranscriptPath
	m["cwd"] = b.Cwd
	m["hook_event_name"] = b.HookEventName

	if b.ToolInput != nil {
		m["tool_input"] = b.ToolInput
	}

	if b.Metadata != nil {
		m["metadata"] = b.Metadata
	}

	return m
}

// PreToolUseEvent runs before a tool is executed.
type PreToolUseEvent struct {
	BaseEvent

	// ToolName is the name of the tool about to run.
	ToolName string
}

// NewPreToolUseEvent constructs a PreToolUseEvent from decoded JSON fields.
func NewPreToolUseEvent(fields map[string]any) (*PreToolUseEvent, error) {
	fs := newFieldSet(fields, EventTypePreToolUse)
	evt := &PreToolUseEvent{
		BaseEvent: fs.base(),
		ToolName:  fs.requireString("tool_name"),
	}
	evt.Extra = fs.extras()

	if err := fs.err(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Kind returns EventTypePreToolUse.
func (e *PreToolUseEvent) Kind() EventType { return EventTypePreToolUse }

func (e *PreToolUseEvent) fields() map[string]any {
	m := e.baseFields()
	m["tool_name"] = e.ToolName

	return m
}

// MarshalJSON serializes the event with all preserved fields.
func (e *PreToolUseEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

// PostToolUseEvent runs after a tool has executed.
type PostToolUseEvent struct {
	BaseEvent

	// ToolName is the name of the tool that ran.
	ToolName string

	// Success reports whether the tool execution succeeded.
	Success bool

	// ToolOutput is the tool's output, when available.
	ToolOutput *string
}

// NewPostToolUseEvent constructs a PostToolUseEvent from decoded JSON fields.
func NewPostToolUseEvent(fields map[string]any) (*PostToolUseEvent, error) {
	fs := newFieldSet(fields, EventTypePostToolUse)
	evt := &PostToolUseEvent{
		BaseEvent:  fs.base(),
		ToolName:   fs.requireString("tool_name"),
		Success:    fs.requireBool("success"),
		ToolOutput: fs.optionalString("tool_output"),
	}
	evt.Extra = fs.extras()

	if err := fs.err(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Kind returns EventTypePostToolUse.
func (e *PostToolUseEvent) Kind() EventType { return EventTypePostToolUse }

func (e *PostToolUseEvent) fields() map[string]any {
	m := e.baseFields()
	m["tool_name"] = e.ToolName
	m["success"] = e.Success

	if e.ToolOutput != nil {
		m["tool_output"] = *e.ToolOutput
	}

	return m
}

// MarshalJSON serializes the event with all preserved fields.
func (e *PostToolUseEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

// NotificationEvent runs when Claude sends a notification.
type NotificationEvent struct {
	BaseEvent

	// NotificationType classifies the notification.
	NotificationType string

	// Message is the notification text, when present.
	Message *string
}

// NewNotificationEvent constructs a NotificationEvent from decoded JSON fields.
func NewNotificationEvent(fields map[string]any) (*NotificationEvent, error) {
	fs := newFieldSet(fields, EventTypeNotification)
	evt := &NotificationEvent{
		BaseEvent:        fs.base(),
		NotificationType: fs.requireString("notification_type"),
		Message:          fs.optionalString("message"),
	}
	evt.Extra = fs.extras()

	if err := fs.err(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Kind returns EventTypeNotification.
func (e *NotificationEvent) Kind() EventType { return EventTypeNotification }

func (e *NotificationEvent) fields() map[string]any {
	m := e.baseFields()
	m["notification_type"] = e.NotificationType

	if e.Message != nil {
		m["message"] = *e.Message
	}

	return m
}

// MarshalJSON serializes the event with all preserved fields.
func (e *NotificationEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

// UserPromptSubmitEvent runs when the user submits a prompt.
type UserPromptSubmitEvent struct {
	BaseEvent

	// Prompt is the submitted prompt text.
	Prompt string
}

// NewUserPromptSubmitEvent constructs a UserPromptSubmitEvent from decoded
// JSON fields.
func NewUserPromptSubmitEvent(fields map[string]any) (*UserPromptSubmitEvent, error) {
	fs := newFieldSet(fields, EventTypeUserPromptSubmit)
	evt := &UserPromptSubmitEvent{
		BaseEvent: fs.base(),
		Prompt:    fs.requireString("prompt"),
	}
	evt.Extra = fs.extras()

	if err := fs.err(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Kind returns EventTypeUserPromptSubmit.
func (e *UserPromptSubmitEvent) Kind() EventType { return EventTypeUserPromptSubmit }

func (e *UserPromptSubmitEvent) fields() map[string]any {
	m := e.baseFields()
	m["prompt"] = e.Prompt

	return m
}

// MarshalJSON serializes the event with all preserved fields.
func (e *UserPromptSubmitEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

// StopEvent runs when Claude finishes responding.
type StopEvent struct {
	BaseEvent

	// ResponseComplete reports whether the response was completed.
	ResponseComplete bool
}

// NewStopEvent constructs a StopEvent from decoded JSON fields.
func NewStopEvent(fields map[string]any) (*StopEvent, error) {
	fs := newFieldSet(fields, EventTypeStop)
	evt := &StopEvent{
		BaseEvent:        fs.base(),
		ResponseComplete: fs.requireBool("response_complete"),
	}
	evt.Extra = fs.extras()

	if err := fs.err(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Kind returns EventTypeStop.
func (e *StopEvent) Kind() EventType { return EventTypeStop }

func (e *StopEvent) fields() map[string]any {
	m := e.baseFields()
	m["response_complete"] = e.ResponseComplete

	return m
}

// MarshalJSON serializes the event with all preserved fields.
func (e *StopEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

// SubagentStopEvent runs when a subagent task completes.
type SubagentStopEvent struct {
	BaseEvent

	// SubagentID identifies the subagent.
	SubagentID string

	// TaskResult is the subagent task result, when present. The shape is
	// intentionally unconstrained.
	TaskResult map[string]any
}

// NewSubagentStopEvent constructs a SubagentStopEvent from decoded JSON fields.
func NewSubagentStopEvent(fields map[string]any) (*SubagentStopEvent, error) {
	fs := newFieldSet(fields, EventTypeSubagentStop)
	evt := &SubagentStopEvent{
		BaseEvent:  fs.base(),
		SubagentID: fs.requireString("subagent_id"),
		TaskResult: fs.optionalObject("task_result"),
	}
	evt.Extra = fs.extras()

	if err := fs.err(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Kind returns EventTypeSubagentStop.
func (e *SubagentStopEvent) Kind() EventType { return EventTypeSubagentStop }

func (e *SubagentStopEvent) fields() map[string]any {
	m := e.baseFields()
	m["subagent_id"] = e.SubagentID

	if e.TaskResult != nil {
		m["task_result"] = e.TaskResult
	}

	return m
}

// MarshalJSON serializes the event with all preserved fields.
func (e *SubagentStopEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

// PreCompactEvent runs before conversation compaction.
type PreCompactEvent struct {
	BaseEvent

	// CompactReason explains why compaction is happening.
	CompactReason string
}

// NewPreCompactEvent constructs a PreCompactEvent from decoded JSON fields.
func NewPreCompactEvent(fields map[string]any) (*PreCompactEvent, error) {
	fs := newFieldSet(fields, EventTypePreCompact)
	evt := &PreCompactEvent{
		BaseEvent:     fs.base(),
		CompactReason: fs.requireString("compact_reason"),
	}
	evt.Extra = fs.extras()

	if err := fs.err(); err != nil {
		return nil, err
	}

	return evt, nil
}

// Kind returns EventTypePreCompact.
func (e *PreCompactEvent) Kind() EventType { return EventTypePreCompact }

func (e *PreCompactEvent) fields() map[string]any {
	m := e.baseFields()
	m["compact_reason"] = e.CompactReason

	return m
}

// MarshalJSON serializes the event with all preserved fields.
func (e *PreCompactEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}
