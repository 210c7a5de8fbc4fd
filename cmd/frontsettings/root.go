package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/frontsettings/internal/app"
	"github.com/wizzomafizzo/frontsettings/internal/constants"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "frontsettings",
		Short:         "Restore persisted frontend settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr instead of the log file")

	rootCmd.AddCommand(
		createRestoreCommand(),
		createCheckCommand(),
		createSaveCommand(),
		createInitCommand(),
	)

	return rootCmd
}

// createAppFromCommand extracts config path and creates an app
func createAppFromCommand(cmd *cobra.Command) (*app.App, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	opts := app.Options{ConfigPath: configPath}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts.LogWriter = zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}
	}

	a, err := app.New(cmd.Context(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}
	return a, nil
}
