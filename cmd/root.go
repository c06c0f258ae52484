package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huntlog/huntlog/cmd/account"
	configcmd "github.com/huntlog/huntlog/cmd/config"
	"github.com/huntlog/huntlog/cmd/season"
	"github.com/huntlog/huntlog/cmd/serve"
	"github.com/huntlog/huntlog/cmd/stats"
	"github.com/huntlog/huntlog/cmd/taxonomy"
	"github.com/huntlog/huntlog/internal/buildinfo"
	"github.com/huntlog/huntlog/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings, info *buildinfo.Context) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "huntlog",
		Short:         "huntlog hunting journal",
		Version:       info.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up the global flags for the root command.
	if err := setupFlags(rootCmd, settings, &configFile); err != nil {
		panic(err)
	}

	taxonomyCmd := taxonomy.Command()

	subcommands := []*cobra.Command{
		serve.Command(settings),
		season.Command(settings),
		account.Command(settings),
		stats.Command(settings),
		configcmd.Command(settings),
		taxonomyCmd,
	}

	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The species table is static and needs no configuration
		if cmd.Name() == taxonomyCmd.Name() {
			return nil
		}
		return initialize(settings, info, configFile)
	}

	return rootCmd
}

// initialize loads the configuration into settings. Flags bound to viper keys
// take precedence over the environment and the config file.
func initialize(settings *conf.Settings, info *buildinfo.Context, configFile string) error {
	if configFile != "" {
		conf.SetConfigFile(configFile)
	}

	loaded, err := conf.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	*settings = *loaded
	settings.Version = info.GetVersion()
	settings.BuildDate = info.GetBuildDate()

	return nil
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings, configFile *string) error {
	rootCmd.PersistentFlags().StringVarP(configFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", false, "Enable debug output")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
