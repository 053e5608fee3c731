package hook_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/hookwire/pkg/hook"
)

var _ = Describe("Response", func() {
	Describe("NewContinueResponse", func() {
		It("approves and continues", func() {
			resp := hook.NewContinueResponse("all good")

			Expect(resp.Continue).To(BeTrue())
			Expect(resp.Decision).To(Equal(hook.DecisionApprove))
			Expect(resp.Reason).To(HaveValue(Equal("all good")))
			Expect(resp.StopReason).To(BeNil())
			Expect(resp.SuppressOutput).To(BeFalse())
		})

		It("omits an empty reason", func() {
			resp := hook.NewContinueResponse("")

			Expect(resp.Reason).To(BeNil())
		})
	})

	Describe("NewBlockResponse", func() {
		It("blocks and stops", func() {
			resp := hook.NewBlockResponse("commit message malformed", "validation failed")

			Expect(resp.Continue).To(BeFalse())
			Expect(resp.Decision).To(Equal(hook.DecisionBlock))
			Expect(resp.Reason).To(HaveValue(Equal("commit message malformed")))
			Expect(resp.StopReason).To(HaveValue(Equal("validation failed")))
		})
	})

	Describe("NewFeedbackResponse", func() {
		It("continues without a decision", func() {
			resp := hook.NewFeedbackResponse("style nit", true)

			Expect(resp.Continue).To(BeTrue())
			Expect(resp.Decision).To(Equal(hook.DecisionUndefined))
			Expect(resp.SuppressOutput).To(BeTrue())
		})
	})

	Describe("wire form", func() {
		It("uses external names verbatim", func() {
			resp := hook.NewBlockResponse("bad payload", "stop now")

			data, err := json.Marshal(resp)
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]any
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())

			Expect(decoded).To(HaveKeyWithValue("continue", false))
			Expect(decoded).To(HaveKeyWithValue("stopReason", "stop now"))
			Expect(decoded).To(HaveKeyWithValue("suppressOutput", false))
			Expect(decoded).To(HaveKeyWithValue("decision", "block"))
			Expect(decoded).To(HaveKeyWithValue("reason", "bad payload"))

			Expect(decoded).NotTo(HaveKey("continue_"))
			Expect(decoded).NotTo(HaveKey("stop_reason"))
			Expect(decoded).NotTo(HaveKey("suppress_output"))
		})

		It("omits absent nullable fields", func() {
			data, err := json.Marshal(hook.NewContinueResponse(""))
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]any
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())

			Expect(decoded).NotTo(HaveKey("reason"))
			Expect(decoded).NotTo(HaveKey("stopReason"))
		})

		It("round-trips every field exactly", func() {
			original := hook.NewFeedbackResponse("needs a signoff", true)

			data, err := json.Marshal(original)
			Expect(err).NotTo(HaveOccurred())

			decoded, err := hook.UnmarshalResponse(data)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(original))
		})

		It("defaults decision to undefined when absent", func() {
			decoded, err := hook.UnmarshalResponse([]byte(`{"continue": true}`))

			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Decision).To(Equal(hook.DecisionUndefined))
			Expect(decoded.Continue).To(BeTrue())
			Expect(decoded.SuppressOutput).To(BeFalse())
		})

		It("accepts external names on the way in", func() {
			payload := `{
				"continue": false,
				"stopReason": "blocked by policy",
				"suppressOutput": true,
				"decision": "block",
				"reason": "tool denied"
			}`

			decoded, err := hook.UnmarshalResponse([]byte(payload))

			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Continue).To(BeFalse())
			Expect(decoded.StopReason).To(HaveValue(Equal("blocked by policy")))
			Expect(decoded.SuppressOutput).To(BeTrue())
			Expect(decoded.Decision).To(Equal(hook.DecisionBlock))
			Expect(decoded.Reason).To(HaveValue(Equal("tool denied")))
		})

		It("rejects malformed response JSON", func() {
			_, err := hook.UnmarshalResponse([]byte(`{"continue":`))

			Expect(err).To(HaveOccurred())
		})
	})
})
