// Package hookresponse maps parse outcomes to hook responses.
package hookresponse

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/hookwire/pkg/config"
	"github.com/smykla-skalski/hookwire/pkg/hook"
	"github.com/smykla-skalski/hookwire/pkg/parser"
)

// Build constructs the response written to stdout for one parse outcome.
// A clean parse approves; failures map onto the three-way error taxonomy:
// unsupported kinds follow the configured policy, everything else blocks
// with an aggregated reason.
func Build(parseErr error, policy config.PolicyConfig) hook.Response {
	if parseErr == nil {
		return hook.NewContinueResponse("")
	}

	var unsupportedErr *parser.UnsupportedKindError
	if errors.As(parseErr, &unsupportedErr) {
		return buildUnsupported(unsupportedErr, policy)
	}

	var schemaErr *hook.SchemaError
	if errors.As(parseErr, &schemaErr) {
		return hook.NewBlockResponse(
			formatSchemaReason(schemaErr),
			"hook payload failed schema validation",
		)
	}

	var decodeErr *parser.DecodeError
	if errors.As(parseErr, &decodeErr) {
		return hook.NewBlockResponse(
			"hook payload is not valid JSON: "+decodeErr.Error(),
			"hook payload is not valid JSON",
		)
	}

	// Not part of the taxonomy; treat as blocking to stay safe.
	return hook.NewBlockResponse(parseErr.Error(), "hook payload rejected")
}

// buildUnsupported applies the unknown-kind policy. Lenient hosts let
// future event kinds pass; strict hosts block them.
func buildUnsupported(
	err *parser.UnsupportedKindError,
	policy config.PolicyConfig,
) hook.Response {
	if policy.UnknownEvents == config.UnknownEventPolicyReject {
		return hook.NewBlockResponse(
			fmt.Sprintf("unsupported hook event kind %q", err.Kind),
			"unsupported hook event kind",
		)
	}

	return hook.NewFeedbackResponse(
		fmt.Sprintf("ignoring unsupported hook event kind %q", err.Kind),
		policy.SuppressOutput,
	)
}

// formatSchemaReason renders every field violation, one per line, so the
// sender can fix all problems in a single round trip.
func formatSchemaReason(err *hook.SchemaError) string {
	var b strings.Builder

	if err.EventName != "" {
		fmt.Fprintf(&b, "invalid %s payload:", err.EventName)
	} else {
		b.WriteString("invalid hook payload:")
	}

	for _, v := range err.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.String())
	}

	return b.String()
}
