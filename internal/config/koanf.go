// Package config loads hookwire CLI configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/hookwire/pkg/config"
)

// ErrInvalidTOML is returned when a TOML config file cannot be parsed.
var ErrInvalidTOML = errors.New("invalid TOML")

const (
	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".hookwire"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// ProjectConfigFile is the project configuration file name.
	ProjectConfigFile = "hookwire.toml"
)

// defaultLogFile is the log location relative to the home directory.
const defaultLogFile = ".hookwire/hookwire.log"

// Loader loads configuration from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (HOOKWIRE_*)
// 3. Project Config (hookwire.toml)
// 4. Global Config (~/.hookwire/config.toml)
// 5. Defaults
type Loader struct {
	k       *koanf.Koanf
	homeDir string
	workDir string
}

// NewLoader creates a Loader rooted at the user's home and working
// directories.
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewLoaderWithDirs(homeDir, workDir), nil
}

// NewLoaderWithDirs creates a Loader with custom directories (for testing).
func NewLoaderWithDirs(homeDir, workDir string) *Loader {
	return &Loader{
		k:       koanf.New("."),
		homeDir: homeDir,
		workDir: workDir,
	}
}

// Load loads configuration from all sources with precedence.
func (l *Loader) Load(flags map[string]any) (*config.Config, error) {
	// Fresh koanf instance per load
	l.k = koanf.New(".")

	// 1. Defaults (lowest priority)
	if err := l.k.Load(confmap.Provider(l.defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Global config: ~/.hookwire/config.toml
	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	// 3. Project config: hookwire.toml in the working directory
	projectPath := filepath.Join(l.workDir, ProjectConfigFile)
	if err := l.loadTOMLFile(projectPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load project config")
	}

	// 4. Environment variables: HOOKWIRE_*
	envOpt := env.Opt{
		Prefix:        "HOOKWIRE_",
		TransformFunc: l.envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 5. CLI flags (highest priority)
	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config
	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf(&cfg)); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// GlobalConfigPath returns the global config file location.
func (l *Loader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// defaults returns the built-in configuration values.
func (l *Loader) defaults() map[string]any {
	return map[string]any{
		"policy.unknown_events":  config.UnknownEventPolicyIgnore.String(),
		"policy.suppress_output": false,
		"logging.path":           filepath.Join(l.homeDir, defaultLogFile),
		"logging.debug":          false,
		"logging.trace":          false,
	}
}

// loadTOMLFile loads one TOML file into the koanf state.
func (l *Loader) loadTOMLFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.CombineErrors(ErrInvalidTOML, err)
	}

	return nil
}

// envTransform maps HOOKWIRE_POLICY_UNKNOWN_EVENTS to
// policy.unknown_events. Section and key are separated by the first
// underscore; keys themselves keep their underscores.
func (l *Loader) envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, "HOOKWIRE_"))

	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key, value
	}

	return section + "." + rest, value
}
