// Package commands provides configuration command definitions for harborctl.
//
// CONFIG COMMANDS:
//   - list: Show every setting of the current session
//   - get: Show one setting by dotted key
//   - set: Change one setting for the session
//   - save: Write the session settings back to the config file
//   - sample: Print a fully-populated default config (exempt)
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
)

// Config command (parent command for configuration operations)
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change harborctl configuration",
	Long: `Commands for inspecting and changing the resolved configuration of
the current session.

Settings are addressed by dotted keys ("harbor.url", "output.format").
Changes made with "config set" apply to the running session only; use
"config save" to persist them to the config file.`,
}

// Config list command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Long: `Show every setting of the current session in flat dotted-key form.

Secret values are replaced with a redaction mask unless --secrets is
passed.`,
	Example: `  # Show the resolved configuration
  harborctl config list

  # Include secret values
  harborctl config list --secrets

  # Output in JSON format
  harborctl -o json config list`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Config get command
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Example: `  # Show the registry URL
  harborctl config get harbor.url`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// Config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting for the session",
	Long: `Change one setting by dotted key.

Boolean settings accept true/false, 1/0, yes/no, and on/off. The row style
takes a comma-separated color pair ("dim,bright"). Changes live in the
session until "config save" writes them back.`,
	Example: `  # Switch default output to JSON for this shell session
  harborctl config set output.format json

  # Set an alternating row style
  harborctl config set output.table.row_style dim,bright`,
	Args: cobra.ExactArgs(2),
	// RunE will be set by the main package that imports this
}

// Config save command
var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the session settings to the config file",
	Example: `  # Persist session changes
  harborctl config save`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Config sample command (exempt from configuration resolution)
var configSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a fully-populated default config file",
	Example: `  # Write a starting config by hand
  harborctl config sample > ~/.config/harborctl/config.toml`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupConfigCommands wires the config command tree
func SetupConfigCommands() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configSampleCmd)
}

// SetupConfigFlags configures flags for config commands
func SetupConfigFlags() {
	configListCmd.Flags().BoolVar(&config.Config.ShowSecrets, "secrets", false,
		"Show secret values instead of the redaction mask")
	configGetCmd.Flags().BoolVar(&config.Config.ShowSecrets, "secrets", false,
		"Show secret values instead of the redaction mask")
}

// GetConfigCommands returns the config subcommands for handler wiring
func GetConfigCommands() (listCmd, getCmd, setCmd, saveCmd, sampleCmd *cobra.Command) {
	return configListCmd, configGetCmd, configSetCmd, configSaveCmd, configSampleCmd
}
