package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/skylight-io/psapi-client/internal/constants"
)

// CLIConfig is the persisted CLI state, stored as YAML in
// ~/.psctl/config.yml. The session token lands here after login so later
// invocations reuse it.
type CLIConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	Token    string `yaml:"token,omitempty"`
	OrgID    string `yaml:"org_id,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

var errUnknownConfigKey = errors.New("unknown config key (expected endpoint, api_key, token, org_id, or output)")

// configFilePath returns the active config file path, honoring --config.
func configFilePath() string {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".psctl", "config.yml")
}

// loadConfig reads the persisted CLI config. A missing or unreadable file
// yields an empty config rather than an error.
func loadConfig() *CLIConfig {
	config := &CLIConfig{}

	path := configFilePath()
	if path == "" {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfig writes the CLI config to disk with restrictive permissions; the
// file holds the session token.
func saveConfig(config *CLIConfig) error {
	path := configFilePath()
	if path == "" {
		return fmt.Errorf("resolving config path: %w", os.ErrNotExist)
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted psctl configuration",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print the stored token.
			display := *config
			if display.Token != "" {
				display.Token = constants.MaskedSecret
			}

			return StandardYAMLRenderer(display)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigField(config, args[0], args[1])
			if err != nil {
				return err
			}

			return saveConfig(config)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigField(config, args[0], "")
			if err != nil {
				return err
			}

			return saveConfig(config)
		},
	}
}

func setConfigField(config *CLIConfig, key, value string) error {
	switch key {
	case "endpoint":
		config.Endpoint = value
	case "api_key":
		config.APIKey = value
	case "token":
		config.Token = value
	case "org_id":
		config.OrgID = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %q", errUnknownConfigKey, key)
	}

	return nil
}
