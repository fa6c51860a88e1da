// Package config loads sustaintrack settings from a YAML file and the
// environment.
//
// Precedence, lowest to highest: built-in defaults, the config file,
// SUSTAINTRACK_* environment variables, then CLI flags (applied by the
// caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/logging"
	"github.com/rshade/sustaintrack/internal/store"
)

// Environment variables that override file settings.
const (
	EnvStore     = "SUSTAINTRACK_STORE"
	EnvFactors   = "SUSTAINTRACK_FACTORS"
	EnvLogLevel  = "SUSTAINTRACK_LOG_LEVEL"
	EnvLogFormat = "SUSTAINTRACK_LOG_FORMAT"
	EnvLogFile   = "SUSTAINTRACK_LOG_FILE"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// DirName is the per-user settings directory under $HOME.
const DirName = ".sustaintrack"

// FileName is the config file name inside DirName.
const FileName = "config.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// StoreConfig locates the products file.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// FactorsConfig locates an optional emission factor override file.
type FactorsConfig struct {
	File string `yaml:"file"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// OutputConfig holds presentation defaults.
type OutputConfig struct {
	DefaultFilter string `yaml:"default_filter"`
	Format        string `yaml:"format"`
}

// Config is the full sustaintrack configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Factors FactorsConfig `yaml:"factors"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`

	configPath string
}

// Dir returns ~/.sustaintrack.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns ~/.sustaintrack/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// New returns a Config holding the built-in defaults. When the home
// directory cannot be resolved the store and config paths are left relative
// to the working directory.
func New() *Config {
	storePath, err := store.DefaultPath()
	if err != nil {
		storePath = store.DefaultFileName
	}
	configPath, err := DefaultPath()
	if err != nil {
		configPath = FileName
	}

	return &Config{
		Store: StoreConfig{Path: storePath},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Output: OutputConfig{
			DefaultFilter: string(dashboard.FilterRecent),
			Format:        OutputTable,
		},
		configPath: configPath,
	}
}

// Load reads the config file at path over the defaults and applies the
// environment via lookupEnv. An empty path selects DefaultPath. A missing
// file is not an error: the defaults are used.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	data, err := os.ReadFile(cfg.configPath)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", cfg.configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config %s: %w", cfg.configPath, err)
	}

	if lookupEnv != nil {
		cfg.ApplyEnv(lookupEnv)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from SUSTAINTRACK_* variables. Empty values
// are ignored.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvStore, &c.Store.Path)
	set(EnvFactors, &c.Factors.File)
	set(EnvLogLevel, &c.Logging.Level)
	set(EnvLogFormat, &c.Logging.Format)
	set(EnvLogFile, &c.Logging.File)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("%w: logging.level %q is not a log level",
			ErrInvalidConfig, c.Logging.Level))
	}

	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q must be console or json",
			ErrInvalidConfig, c.Logging.Format))
	}

	switch c.Output.Format {
	case OutputTable, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: output.format %q must be table or json",
			ErrInvalidConfig, c.Output.Format))
	}

	if _, err := dashboard.ParseFilter(c.Output.DefaultFilter); err != nil {
		errs = append(errs, fmt.Errorf("%w: output.default_filter: %w", ErrInvalidConfig, err))
	}

	if strings.TrimSpace(c.Store.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: store.path is empty", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConfigPath returns the file this Config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// ToLoggingConfig converts the logging section for logging.New.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}
