package hookresponse_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/hookwire/internal/hookresponse"
	"github.com/smykla-skalski/hookwire/pkg/config"
	"github.com/smykla-skalski/hookwire/pkg/hook"
	"github.com/smykla-skalski/hookwire/pkg/parser"
)

var _ = Describe("Build", func() {
	var policy config.PolicyConfig

	BeforeEach(func() {
		policy = config.PolicyConfig{
			UnknownEvents: config.UnknownEventPolicyIgnore,
		}
	})

	parseErr := func(raw string) error {
		_, err := parser.Parse(raw)
		ExpectWithOffset(1, err).To(HaveOccurred())

		return err
	}

	Context("when parsing succeeded", func() {
		It("approves and continues", func() {
			resp := hookresponse.Build(nil, policy)

			Expect(resp.Continue).To(BeTrue())
			Expect(resp.Decision).To(Equal(hook.DecisionApprove))
			Expect(resp.Reason).To(BeNil())
			Expect(resp.StopReason).To(BeNil())
		})
	})

	Context("when the payload is not valid JSON", func() {
		It("blocks with a decode reason", func() {
			resp := hookresponse.Build(parseErr(`{not json`), policy)

			Expect(resp.Continue).To(BeFalse())
			Expect(resp.Decision).To(Equal(hook.DecisionBlock))
			Expect(*resp.Reason).To(ContainSubstring("not valid JSON"))
			Expect(*resp.StopReason).To(Equal("hook payload is not valid JSON"))
		})
	})

	Context("when the payload violates the schema", func() {
		It("blocks and lists every violation", func() {
			err := parseErr(`{"hook_event_name": "PreToolUse"}`)

			resp := hookresponse.Build(err, policy)

			Expect(resp.Continue).To(BeFalse())
			Expect(resp.Decision).To(Equal(hook.DecisionBlock))
			Expect(*resp.Reason).To(ContainSubstring("invalid PreToolUse payload:"))
			Expect(*resp.Reason).To(ContainSubstring("\n  - session_id"))
			Expect(*resp.Reason).To(ContainSubstring("\n  - transcript_path"))
			Expect(*resp.Reason).To(ContainSubstring("\n  - cwd"))
			Expect(*resp.Reason).To(ContainSubstring("\n  - tool_name"))
		})
	})

	Context("when the event kind is unsupported", func() {
		unsupported := func() error {
			return parseErr(`{
				"session_id": "s",
				"transcript_path": "/t",
				"cwd": "/w",
				"hook_event_name": "FutureEvent"
			}`)
		}

		It("passes through under the ignore policy", func() {
			resp := hookresponse.Build(unsupported(), policy)

			Expect(resp.Continue).To(BeTrue())
			Expect(resp.Decision).To(Equal(hook.DecisionUndefined))
			Expect(*resp.Reason).To(Equal(
				`ignoring unsupported hook event kind "FutureEvent"`,
			))
			Expect(resp.SuppressOutput).To(BeFalse())
		})

		It("honors the suppress-output setting under the ignore policy", func() {
			policy.SuppressOutput = true

			resp := hookresponse.Build(unsupported(), policy)

			Expect(resp.Continue).To(BeTrue())
			Expect(resp.SuppressOutput).To(BeTrue())
		})

		It("blocks under the reject policy", func() {
			policy.UnknownEvents = config.UnknownEventPolicyReject

			resp := hookresponse.Build(unsupported(), policy)

			Expect(resp.Continue).To(BeFalse())
			Expect(resp.Decision).To(Equal(hook.DecisionBlock))
			Expect(*resp.Reason).To(Equal(`unsupported hook event kind "FutureEvent"`))
			Expect(*resp.StopReason).To(Equal("unsupported hook event kind"))
		})
	})

	Context("when the error is outside the parse taxonomy", func() {
		It("blocks to stay safe", func() {
			resp := hookresponse.Build(errors.New("disk on fire"), policy)

			Expect(resp.Continue).To(BeFalse())
			Expect(resp.Decision).To(Equal(hook.DecisionBlock))
			Expect(*resp.Reason).To(Equal("disk on fire"))
			Expect(*resp.StopReason).To(Equal("hook payload rejected"))
		})
	})
})
