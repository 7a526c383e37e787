package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/fretsmart/internal/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify fretsmart configuration",
		Long: `View or modify fretsmart configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
		Args: cobra.NoArgs,
		RunE: a.runConfigShow,
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigShow,
	}

	configSetCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

Keys use dot notation, e.g.:
  fretsmart config set data.file ~/music/fretsmart.txt
  fretsmart config set render.style brackets
  fretsmart config set selection.highlight pentatonic

Valid keys:
  ` + strings.Join(config.Keys(), "\n  "),
		Args: cobra.ExactArgs(2),
		RunE: a.runConfigSet,
	}

	configInitCmd := &cobra.Command{
		Use:               "init",
		Short:             "Create a default config file",
		Long:              `Create a default config file at ~/.config/fretsmart/config.yaml (or the --config path) with all available options.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupConfig,
		RunE:              a.runConfigInit,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigPath,
	}

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	return configCmd
}

func (a *app) runConfigShow(cmd *cobra.Command, args []string) error {
	if err := a.load(cmd); err != nil {
		return err
	}

	body, err := a.cfg.YAML()
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	if used := a.v.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# Config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}
	_, err = out.Write(body)
	return err
}

// configKeyTypes lists the keys that are not plain strings.
var configKeyTypes = map[string]string{
	"data.strict_numbers": "bool",
	"render.frets":        "int",
}

func (a *app) runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if !slices.Contains(config.Keys(), key) {
		return fmt.Errorf("unknown configuration key: %s\nRun 'fretsmart config set --help' to see valid keys", key)
	}

	var typedValue any
	switch configKeyTypes[key] {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = b
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typedValue = n
	default:
		typedValue = value
	}

	// Validate against the effective configuration, then persist only what
	// the file already holds plus the new value.
	a.v.Set(key, typedValue)
	if _, err := config.Load(a.v); err != nil {
		return err
	}

	configFile := a.cfgFile
	if configFile == "" {
		configFile = a.v.ConfigFileUsed()
	}
	if configFile == "" {
		configFile = config.ConfigFile()
	}

	fileOnly, err := readConfigFileOnly(configFile)
	if err != nil {
		return err
	}
	fileOnly.Set(key, typedValue)

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := fileOnly.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// readConfigFileOnly loads path into a fresh viper without defaults, flags
// or environment overrides. A missing file yields an empty configuration.
func readConfigFileOnly(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return v, nil
}

func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := a.cfgFile
	if configFile == "" {
		configFile = config.ConfigFile()
	}

	if err := config.WriteDefault(configFile); err != nil {
		return fmt.Errorf("%w\nUse 'fretsmart config set' to modify values", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize fretsmart's behavior.")
	return nil
}

func (a *app) runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := a.v.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintf(out, "\nEnvironment variables: %s_* (e.g., %s_RENDER_STYLE)\n", config.EnvPrefix, config.EnvPrefix)
	return nil
}
