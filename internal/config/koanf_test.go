package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/cockroachdb/errors"

	internalconfig "github.com/smykla-skalski/hookwire/internal/config"
	"github.com/smykla-skalski/hookwire/pkg/config"
)

var _ = Describe("Loader", func() {
	var (
		homeDir string
		workDir string
		loader  *internalconfig.Loader
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		loader = internalconfig.NewLoaderWithDirs(homeDir, workDir)
	})

	writeGlobal := func(content string) {
		dir := filepath.Join(homeDir, internalconfig.GlobalConfigDir)
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(
			filepath.Join(dir, internalconfig.GlobalConfigFile),
			[]byte(content),
			0o644,
		)).To(Succeed())
	}

	writeProject := func(content string) {
		Expect(os.WriteFile(
			filepath.Join(workDir, internalconfig.ProjectConfigFile),
			[]byte(content),
			0o644,
		)).To(Succeed())
	}

	Context("with no config sources", func() {
		It("returns the built-in defaults", func() {
			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.PolicyOrDefault().UnknownEvents).
				To(Equal(config.UnknownEventPolicyIgnore))
			Expect(cfg.PolicyOrDefault().SuppressOutput).To(BeFalse())
			Expect(cfg.LoggingOrDefault().Path).To(Equal(
				filepath.Join(homeDir, ".hookwire", "hookwire.log"),
			))
			Expect(cfg.LoggingOrDefault().Debug).To(BeFalse())
		})
	})

	Context("with a global config file", func() {
		It("overrides the defaults", func() {
			writeGlobal(`
[policy]
unknown_events = "reject"

[logging]
debug = true
`)

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.PolicyOrDefault().UnknownEvents).
				To(Equal(config.UnknownEventPolicyReject))
			Expect(cfg.LoggingOrDefault().Debug).To(BeTrue())
		})
	})

	Context("with global and project config files", func() {
		It("prefers the project file", func() {
			writeGlobal(`
[policy]
unknown_events = "reject"
suppress_output = true
`)
			writeProject(`
[policy]
unknown_events = "ignore"
`)

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.PolicyOrDefault().UnknownEvents).
				To(Equal(config.UnknownEventPolicyIgnore))
			// Keys the project file does not set survive from the global file.
			Expect(cfg.PolicyOrDefault().SuppressOutput).To(BeTrue())
		})
	})

	Context("with environment variables", func() {
		It("overrides config files", func() {
			writeProject(`
[policy]
unknown_events = "ignore"
`)
			GinkgoT().Setenv("HOOKWIRE_POLICY_UNKNOWN_EVENTS", "reject")
			GinkgoT().Setenv("HOOKWIRE_LOGGING_PATH", "/tmp/env.log")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.PolicyOrDefault().UnknownEvents).
				To(Equal(config.UnknownEventPolicyReject))
			Expect(cfg.LoggingOrDefault().Path).To(Equal("/tmp/env.log"))
		})
	})

	Context("with CLI flags", func() {
		It("wins over every other source", func() {
			writeProject(`
[policy]
unknown_events = "ignore"
`)
			GinkgoT().Setenv("HOOKWIRE_POLICY_UNKNOWN_EVENTS", "ignore")

			cfg, err := loader.Load(map[string]any{
				"policy.unknown_events": "reject",
				"logging.trace":         true,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.PolicyOrDefault().UnknownEvents).
				To(Equal(config.UnknownEventPolicyReject))
			Expect(cfg.LoggingOrDefault().Trace).To(BeTrue())
		})
	})

	Context("with a malformed TOML file", func() {
		It("reports invalid TOML", func() {
			writeProject(`policy = [unclosed`)

			_, err := loader.Load(nil)

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, internalconfig.ErrInvalidTOML)).To(BeTrue())
		})
	})

	Context("with an invalid policy value", func() {
		It("fails to unmarshal", func() {
			writeProject(`
[policy]
unknown_events = "explode"
`)

			_, err := loader.Load(nil)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("explode"))
		})
	})

	It("reports the global config path under the home directory", func() {
		Expect(loader.GlobalConfigPath()).To(Equal(
			filepath.Join(homeDir, ".hookwire", "config.toml"),
		))
	})
})
