// Package handlers provides command handler functions for harborctl
// configuration operations.
//
// This file contains the config subcommands that inspect and mutate the
// resolved settings of the running session, plus init and sample which work
// without any loaded configuration. Mutations made by config set live only
// in the session until config save writes them back to the source file.
package handlers

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harborctl/harborctl/cmd/harborctl/config"
	"github.com/harborctl/harborctl/cmd/harborctl/display"
	"github.com/harborctl/harborctl/cmd/harborctl/session"
	"github.com/harborctl/harborctl/internal/logging"
	"github.com/harborctl/harborctl/internal/settings"
)

// HandleConfigList handles the config list subcommand for displaying every
// setting of the current session in flat dotted-key form. Secrets are
// redacted unless --secrets was passed.
func HandleConfigList(cmd *cobra.Command, args []string) error {
	s := session.Current()
	display.ConfigListing(s.Flatten(config.Config.ShowSecrets), s.Paths())
	return nil
}

// HandleConfigGet handles the config get subcommand for displaying one
// setting. Unknown keys are fatal here, unlike in config files where they
// only warn, since a mistyped key on the command line deserves immediate
// feedback.
func HandleConfigGet(cmd *cobra.Command, args []string) error {
	s := session.Current()
	key := args[0]

	value, err := s.GetPath(key)
	if err != nil {
		if errors.Is(err, settings.ErrUnknownKey) {
			return fmt.Errorf("unknown config key %q (see 'harborctl config list' for valid keys)", key)
		}
		return err
	}
	if !config.Config.ShowSecrets {
		value = s.Flatten(false)[key]
	}
	fmt.Println(value)
	return nil
}

// HandleConfigSet handles the config set subcommand for changing one setting
// in the running session. Connection and credential changes drop the cached
// API client so the next operation reconnects with the new values.
func HandleConfigSet(cmd *cobra.Command, args []string) error {
	s := session.Current()
	key, value := args[0], args[1]

	warning, err := s.SetPath(key, value)
	if err != nil {
		if errors.Is(err, settings.ErrUnknownKey) {
			return fmt.Errorf("unknown config key %q (see 'harborctl config list' for valid keys)", key)
		}
		return err
	}
	if warning != "" && s.General.Warnings {
		logging.Warn("%s", warning)
	}

	if strings.HasPrefix(key, "harbor.") {
		session.ResetClient()
	}

	if session.Interactive() {
		logging.Success("Set %s (session only; run 'config save' to persist)", key)
	} else {
		logging.Warn("Set %s for this invocation only; changes are not written back without 'config save'", key)
	}
	return nil
}

// HandleConfigSave handles the config save subcommand, writing the current
// session settings back to the file they were loaded from. Secrets are
// written in the clear, which is why the file is created with 0600
// permissions.
func HandleConfigSave(cmd *cobra.Command, args []string) error {
	s := session.Current()

	path := s.SourcePath()
	if path == "" {
		path = settings.ResolvePath(config.Global.ConfigPath)
	}

	if err := s.SaveTo(path); err != nil {
		return fmt.Errorf("cannot save config: %w", err)
	}
	display.Success("Saved configuration to %s", path)
	return nil
}

// HandleConfigSample handles the config sample subcommand, printing a
// fully-populated default config file for piping into a new location. Exempt
// from configuration loading so it works anywhere.
func HandleConfigSample(cmd *cobra.Command, args []string) error {
	sample, err := settings.Sample()
	if err != nil {
		return err
	}
	fmt.Print(sample)
	return nil
}

// HandleInit handles the init subcommand, creating a default config file at
// the resolved location. Refuses to overwrite an existing file unless
// --force was passed, since the file may hold credentials.
func HandleInit(cmd *cobra.Command, args []string) error {
	path := settings.ResolvePath(config.Global.ConfigPath)

	if _, err := os.Stat(path); err == nil && !config.Init.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := settings.Default().SaveTo(path); err != nil {
		return fmt.Errorf("cannot create config file: %w", err)
	}
	display.Success("Created config file at %s", path)
	fmt.Println("Edit it to set your registry URL and credentials, or use environment variables.")
	return nil
}
