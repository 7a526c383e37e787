package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/selection"
)

// Config represents the complete fretsmart configuration
type Config struct {
	Data      DataConfig          `mapstructure:"data" yaml:"data"`
	Selection selection.Selection `mapstructure:"selection" yaml:"selection"`
	Render    RenderConfig        `mapstructure:"render" yaml:"render"`
	Logging   LoggingConfig       `mapstructure:"logging" yaml:"logging"`
}

// DataConfig controls where records are read from and how strictly
type DataConfig struct {
	// File is the data file path. A leading ~ is expanded to the home directory.
	File string `mapstructure:"file" yaml:"file"`
	// StrictNumbers rejects offsets and intervals that are not non-negative
	// integers instead of reading them as 0
	StrictNumbers bool `mapstructure:"strict_numbers" yaml:"strict_numbers"`
}

// RenderConfig controls the fretboard diagram
type RenderConfig struct {
	// Frets is the highest fret drawn (default: 24, min: 1, max: 36)
	Frets int `mapstructure:"frets" yaml:"frets"`
	// Style selects highlight emphasis
	// Options: "auto", "color", "brackets", "plain"
	Style string `mapstructure:"style" yaml:"style"`
	// HighlightColor is the lipgloss color used by the "color" style:
	// an ANSI index ("1") or a hex value ("#F87171")
	HighlightColor string `mapstructure:"highlight_color" yaml:"highlight_color"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is the minimum level logged: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format" yaml:"format"`
	// File receives log entries; empty means stderr
	File string `mapstructure:"file" yaml:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Data: DataConfig{
			File:          "data.txt",
			StrictNumbers: false,
		},
		Selection: selection.Default(),
		Render: RenderConfig{
			Frets:          24,
			Style:          "auto",
			HighlightColor: "1",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			File:   "",
		},
	}
}

// ResolveDataFile returns the data file path with a leading ~ expanded.
func (d *DataConfig) ResolveDataFile() string {
	return ExpandHome(d.File)
}

// ResolveLogFile returns the log file path with a leading ~ expanded.
func (l *LoggingConfig) ResolveLogFile() string {
	return ExpandHome(l.File)
}

// ExpandHome replaces a leading ~ or ~/ with the user's home directory.
// Paths without one, or when the home directory is unknown, are returned
// unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// Data defaults
	v.SetDefault("data.file", defaults.Data.File)
	v.SetDefault("data.strict_numbers", defaults.Data.StrictNumbers)

	// Selection defaults
	v.SetDefault("selection.instrument", defaults.Selection.Instrument)
	v.SetDefault("selection.tuning", defaults.Selection.Tuning)
	v.SetDefault("selection.tuning_note", defaults.Selection.TuningNote)
	v.SetDefault("selection.highlight_type", defaults.Selection.HighlightType)
	v.SetDefault("selection.highlight", defaults.Selection.Highlight)
	v.SetDefault("selection.highlight_note", defaults.Selection.HighlightNote)

	// Render defaults
	v.SetDefault("render.frets", defaults.Render.Frets)
	v.SetDefault("render.style", defaults.Render.Style)
	v.SetDefault("render.highlight_color", defaults.Render.HighlightColor)

	// Logging defaults
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// Keys returns every configuration key, in the order SetDefaults registers
// them.
func Keys() []string {
	return []string{
		"data.file",
		"data.strict_numbers",
		"selection.instrument",
		"selection.tuning",
		"selection.tuning_note",
		"selection.highlight_type",
		"selection.highlight",
		"selection.highlight_note",
		"render.frets",
		"render.style",
		"render.highlight_color",
		"logging.level",
		"logging.format",
		"logging.file",
	}
}

// EnvPrefix is the prefix of environment variables that override config
// keys, e.g. FRETSMART_RENDER_STYLE for render.style.
const EnvPrefix = "FRETSMART"

// Setup prepares v for reading fretsmart configuration: defaults,
// environment overrides and the config file search path. configFile, when
// non-empty, is used instead of searching.
func Setup(v *viper.Viper, configFile string) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadConfigFile reads the config file located by Setup. A missing file is
// not an error unless it was named explicitly.
func ReadConfigFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fretsmart")
	}
	// Fall back to ~/.config/fretsmart
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fretsmart"
	}
	return filepath.Join(home, ".config", "fretsmart")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

const fileHeader = `# fretsmart configuration
#
# Every key can also be set through the environment, e.g.
# FRETSMART_RENDER_STYLE=brackets for render.style.
#
# render.style: auto, color, brackets, plain
# logging.level: debug, info, warn, error
`

// WriteDefault writes a config file holding the default configuration to
// path, creating its directory. An existing file is never overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := Default().YAML()
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if _, err := f.WriteString(fileHeader + "\n" + string(body)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return f.Close()
}
