package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/frontsettings/internal/settings"
)

// createCheckCommand creates the check command.
func createCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [blob]",
		Short: "Check whether a settings blob would be restored",
		Long: "Validate a settings blob, given as an argument or read from the configured " +
			"source, and print the payload that would be dispatched or the reason it would be dropped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				source, err := a.Source(a.Context(cmd.Context()))
				if err != nil {
					return err //nolint:wrapcheck // already wrapped
				}
				if raw, err = source.Read(a.Context(cmd.Context())); err != nil {
					return fmt.Errorf("failed to read persisted settings: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			payload, err := a.Check(raw)
			if err != nil {
				_, _ = color.New(color.FgYellow).Fprintf(out, "not restored: %v\n", err)
				return nil
			}

			_, _ = color.New(color.FgGreen).Fprintln(out, "restorable")
			writePayload(cmd, payload)
			return nil
		},
	}
	return cmd
}

func writePayload(cmd *cobra.Command, payload settings.Payload) {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", key, payload[key])
	}
}
