package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/frontsettings/internal/store"
	"gopkg.in/yaml.v3"
)

// createRestoreCommand creates the restore command.
func createRestoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore persisted settings and print the resulting state",
		Long: "Read the persisted settings blob from the configured source, restore it " +
			"into a fresh store and print the settings state. Unusable blobs leave the defaults.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var state store.SessionSettings
			if cmd.Flags().Changed("blob") {
				blob, _ := cmd.Flags().GetString("blob")
				state, err = a.RestoreBlob(cmd.Context(), blob)
			} else {
				state, err = a.Restore(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("failed to restore settings: %w", err)
			}

			out, err := yaml.Marshal(state)
			if err != nil {
				return fmt.Errorf("failed to render settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err //nolint:wrapcheck // write to stdout
		},
	}

	cmd.Flags().String("blob", "", "Restore this blob instead of reading the configured source")
	return cmd
}
