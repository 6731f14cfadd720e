package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/d360-io/d360/internal/constants"
	"github.com/d360-io/d360/pkg/d360"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	API     string `json:"api,omitempty"   yaml:"api,omitempty"`
	Token   string `json:"token,omitempty" yaml:"token,omitempty"`
	Output  string `json:"output"          yaml:"output"`
	NoColor bool   `json:"no_color"        yaml:"no_color"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage d360 CLI configuration including the API endpoint and token",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetAPICommand())
	cmd.AddCommand(newConfigSetTokenCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the token redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print the token itself
			if config.Token != "" {
				config.Token = "[REDACTED]"
			}

			output := viper.GetString("output")
			switch output {
			case "json":
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(config)
			case "yaml":
				encoder := yaml.NewEncoder(os.Stdout)
				return encoder.Encode(config)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append([]string{"API", formatConfigValue(config.API)})
				_ = table.Append([]string{"Token", formatConfigValue(config.Token)})
				_ = table.Append([]string{"Output", config.Output})
				_ = table.Append([]string{"No Color", fmt.Sprintf("%t", config.NoColor)})

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render config table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetAPICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api URL",
		Short: "Set the API endpoint",
		Long:  "Persist the Document360 API endpoint to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.API = args[0]

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("Set API endpoint to '%s'\n", config.API)

			return nil
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token [TOKEN]",
		Short: "Set the API token",
		Long: `Persist the API token to the config file.

When no argument is given the token is read from the terminal
without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				fmt.Fprint(os.Stderr, "API token: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = string(raw)
			}

			if token == "" {
				return d360.ErrAPITokenRequired
			}

			config := loadConfig()
			config.Token = token

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Println("Token saved")

			return nil
		},
	}
}

func loadConfig() *Config {
	output := viper.GetString("output")
	if output == "" {
		output = "table"
	}

	return &Config{
		API:     viper.GetString("api"),
		Token:   viper.GetString("token"),
		Output:  output,
		NoColor: viper.GetBool("no-color"),
	}
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".d360")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func formatConfigValue(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
