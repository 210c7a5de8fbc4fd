package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/frontsettings/internal/app"
)

// createInitCommand creates the init command.
func createInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			force, _ := cmd.Flags().GetBool("force")

			if err := app.InitConfig(afero.NewOsFs(), configPath, force); err != nil {
				return err //nolint:wrapcheck // already wrapped
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return err //nolint:wrapcheck // write to stdout
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	return cmd
}
