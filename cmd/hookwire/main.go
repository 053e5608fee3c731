// Package main provides the CLI entry point for hookwire.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/hookwire/internal/config"
	"github.com/smykla-skalski/hookwire/internal/hookresponse"
	"github.com/smykla-skalski/hookwire/pkg/config"
	"github.com/smykla-skalski/hookwire/pkg/logger"
	"github.com/smykla-skalski/hookwire/pkg/parser"
)

// ExitCodeAllow indicates the hook ran to completion. Block decisions are
// communicated via the JSON response on stdout, not the exit code.
const ExitCodeAllow = 0

var (
	debugMode     bool
	traceMode     bool
	logFile       string
	unknownEvents string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(ExitCodeAllow)
}

var rootCmd = &cobra.Command{
	Use:   "hookwire",
	Short: "Claude Code hook event parser",
	Long: `hookwire reads a hook event payload from stdin, validates it against
the event schema for its declared kind, and writes a hook response to stdout.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file path (overrides config)")
	rootCmd.Flags().
		StringVar(&unknownEvents, "unknown-events", "", "Unknown event policy: ignore or reject (overrides config)")
}

func run(cmd *cobra.Command, _ []string) error {
	loader, err := internalconfig.NewLoader()
	if err != nil {
		return err
	}

	cfg, err := loader.Load(flagOverrides())
	if err != nil {
		return err
	}

	log, err := setupLogger(cfg.LoggingOrDefault())
	if err != nil {
		return err
	}

	payload, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}

	evt, parseErr := parser.ParseBytes(payload)

	switch {
	case parseErr != nil:
		log.Info("hook payload rejected", "error", parseErr.Error())
	default:
		log.Info("hook payload parsed",
			"eventType", evt.Kind().String(),
		)
	}

	resp := hookresponse.Build(parseErr, cfg.PolicyOrDefault())

	out, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

// flagOverrides maps set CLI flags onto config keys.
func flagOverrides() map[string]any {
	flags := make(map[string]any)

	if debugMode {
		flags["logging.debug"] = true
	}

	if traceMode {
		flags["logging.trace"] = true
	}

	if logFile != "" {
		flags["logging.path"] = logFile
	}

	if unknownEvents != "" {
		flags["policy.unknown_events"] = unknownEvents
	}

	return flags
}

//nolint:ireturn // logger selection depends on config
func setupLogger(cfg config.LoggingConfig) (logger.Logger, error) {
	if cfg.Path == "" {
		return logger.NewNoOpLogger(), nil
	}

	return logger.NewFileLogger(cfg.Path, logger.LevelFromFlags(cfg.Debug, cfg.Trace))
}
