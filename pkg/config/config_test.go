package config_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/hookwire/pkg/config"
)

var _ = Describe("ParseUnknownEventPolicy", func() {
	DescribeTable("valid values",
		func(input string, expected config.UnknownEventPolicy) {
			policy, err := config.ParseUnknownEventPolicy(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(policy).To(Equal(expected))
		},
		Entry("ignore", "ignore", config.UnknownEventPolicyIgnore),
		Entry("reject", "reject", config.UnknownEventPolicyReject),
	)

	It("rejects unrecognized values", func() {
		_, err := config.ParseUnknownEventPolicy("explode")

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, config.ErrInvalidUnknownEventPolicy)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(`"explode"`))
		Expect(err.Error()).To(ContainSubstring(`"ignore"`))
		Expect(err.Error()).To(ContainSubstring(`"reject"`))
	})
})

var _ = Describe("UnknownEventPolicy", func() {
	It("serializes as its lowercase name", func() {
		data, err := json.Marshal(config.UnknownEventPolicyReject)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"reject"`))
	})

	It("deserializes from its lowercase name", func() {
		var policy config.UnknownEventPolicy

		Expect(json.Unmarshal([]byte(`"ignore"`), &policy)).To(Succeed())
		Expect(policy).To(Equal(config.UnknownEventPolicyIgnore))
	})

	It("defaults to ignore as the zero value", func() {
		var policy config.UnknownEventPolicy

		Expect(policy).To(Equal(config.UnknownEventPolicyIgnore))
	})
})

var _ = Describe("Config sections", func() {
	It("falls back to zero-value policy when the section is absent", func() {
		var cfg *config.Config

		Expect(cfg.PolicyOrDefault()).To(Equal(config.PolicyConfig{}))
		Expect(cfg.LoggingOrDefault()).To(Equal(config.LoggingConfig{}))

		cfg = &config.Config{}
		Expect(cfg.PolicyOrDefault().UnknownEvents).
			To(Equal(config.UnknownEventPolicyIgnore))
	})

	It("returns the configured sections when present", func() {
		cfg := &config.Config{
			Policy: &config.PolicyConfig{
				UnknownEvents:  config.UnknownEventPolicyReject,
				SuppressOutput: true,
			},
			Logging: &config.LoggingConfig{Path: "/tmp/hookwire.log", Debug: true},
		}

		Expect(cfg.PolicyOrDefault().UnknownEvents).
			To(Equal(config.UnknownEventPolicyReject))
		Expect(cfg.PolicyOrDefault().SuppressOutput).To(BeTrue())
		Expect(cfg.LoggingOrDefault().Path).To(Equal("/tmp/hookwire.log"))
		Expect(cfg.LoggingOrDefault().Debug).To(BeTrue())
	})
})
