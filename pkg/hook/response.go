package hook

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Decision represents the hook's decision about the event.
type Decision int

const (
	// DecisionUndefined is the default when no explicit decision is made.
	// Zero value on purpose: an absent wire field decodes to it.
	DecisionUndefined Decision = iota

	// DecisionApprove approves the operation.
	DecisionApprove

	// DecisionBlock blocks the operation.
	DecisionBlock
)

// Response is the hook's answer to an event. Internal names differ from the
// wire names: Continue, StopReason, and SuppressOutput serialize as
// "continue", "stopReason", and "suppressOutput".
type Response struct {
	// Continue reports whether Claude should continue execution.
	Continue bool `json:"continue"`

	// StopReason explains why execution stops, when it does.
	StopReason *string `json:"stopReason,omitempty"`

	// SuppressOutput hides the hook's stdout from the transcript.
	SuppressOutput bool `json:"suppressOutput"`

	// Decision is the approve/block/undefined outcome.
	Decision Decision `json:"decision"`

	// Reason explains the decision, shown to the user.
	Reason *string `json:"reason,omitempty"`
}

// NewContinueResponse builds an approving response. An empty reason is
// omitted from the wire form.
func NewContinueResponse(reason string) Response {
	return Response{
		Continue: true,
		Decision: DecisionApprove,
		Reason:   optString(reason),
	}
}

// NewBlockResponse builds a blocking response. An empty stopReason is
// omitted from the wire form.
func NewBlockResponse(reason, stopReason string) Response {
	return Response{
		Continue:   false,
		Decision:   DecisionBlock,
		Reason:     optString(reason),
		StopReason: optString(stopReason),
	}
}

// NewFeedbackResponse builds a response that lets execution continue while
// reporting feedback, optionally suppressing the hook's output.
func NewFeedbackResponse(reason string, suppressOutput bool) Response {
	return Response{
		Continue:       true,
		Decision:       DecisionUndefined,
		Reason:         optString(reason),
		SuppressOutput: suppressOutput,
	}
}

// UnmarshalResponse decodes a response from its wire form.
func UnmarshalResponse(data []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, errors.Wrap(err, "unmarshaling hook response")
	}

	return resp, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
