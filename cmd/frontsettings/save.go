package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/frontsettings/internal/constants"
	"github.com/wizzomafizzo/frontsettings/internal/settings"
)

// createSaveCommand creates the save command.
func createSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Persist settings to the configured source",
		Long:  "Encode the given settings into a blob and write it to the configured source. Only set flags are saved.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := payloadFromFlags(cmd)
			if err != nil {
				return err
			}

			a, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			blob, err := a.Save(cmd.Context(), payload)
			if err != nil {
				return err //nolint:wrapcheck // already wrapped
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), blob)
			return err //nolint:wrapcheck // write to stdout
		},
	}

	cmd.Flags().String("timeframe", "", "Timeframe setting (REMEMBER, ALL, 1Y, 3M, 1M, 2W, 1W)")
	cmd.Flags().String("last", "", "Last known timeframe (ALL, 1Y, 3M, 1M, 2W, 1W)")
	cmd.Flags().Bool("defi-setup-done", false, "Mark the DeFi setup as done")
	return cmd
}

func payloadFromFlags(cmd *cobra.Command) (settings.Payload, error) {
	payload := settings.Payload{}
	flags := cmd.Flags()

	if flags.Changed("timeframe") {
		v, err := flags.GetString("timeframe")
		if err != nil {
			return nil, fmt.Errorf("failed to get timeframe flag: %w", err)
		}
		payload[constants.KeyTimeframeSetting] = v
	}
	if flags.Changed("last") {
		v, err := flags.GetString("last")
		if err != nil {
			return nil, fmt.Errorf("failed to get last flag: %w", err)
		}
		payload[constants.KeyLastKnownTimeframe] = v
	}
	if flags.Changed("defi-setup-done") {
		v, err := flags.GetBool("defi-setup-done")
		if err != nil {
			return nil, fmt.Errorf("failed to get defi-setup-done flag: %w", err)
		}
		payload[constants.KeyDefiSetupDone] = v
	}

	return payload, nil
}
