// Package config prints the effective configuration.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/huntlog/huntlog/internal/conf"
)

const redacted = "[REDACTED]"

// Command creates the config command and its subcommands.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(dumpCommand(settings), saveCommand(settings), pathCommand())

	return cmd
}

func dumpCommand(settings *conf.Settings) *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(cmd.OutOrStdout(), settings, showSecrets)
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print passwords and DSNs in clear text")

	return cmd
}

func saveCommand(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "save [path]",
		Short: "Write the effective settings to a config file",
		Long:  "Write the effective settings to path, or over the config file in use when no path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				found, err := conf.FindConfigFile()
				if err != nil {
					return err
				}
				path = found
			}
			if err := conf.SaveYAMLConfig(path, settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Settings written to %s\n", path)
			return nil
		},
	}
}

func pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := conf.FindConfigFile()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

func dump(w io.Writer, settings *conf.Settings, showSecrets bool) error {
	out := *settings
	if !showSecrets {
		redact(&out)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	return enc.Close()
}

// redact masks secrets in a copy of the settings.
func redact(s *conf.Settings) {
	mask := func(v *string) {
		if *v != "" {
			*v = redacted
		}
	}
	mask(&s.Output.MySQL.Password)
	mask(&s.Security.Admin.Password)
	mask(&s.Sentry.DSN)
}
