package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tinytelemetry/launchboard/internal/model"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <launch-id>",
		Short: "Print the details of one launch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, apiURL)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, cleanup, err := newLogger(cfg, "")
			if err != nil {
				return err
			}
			defer cleanup()

			client, err := newClient(cfg, logger, nil)
			if err != nil {
				return err
			}
			launch, err := client.FetchLaunch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printLaunch(cmd.OutOrStdout(), launch)
			return nil
		},
	}
}

// printLaunch writes one launch as aligned label/value lines. Absent
// optional fields are skipped.
func printLaunch(w io.Writer, l model.Launch) {
	line := func(label, value string) {
		fmt.Fprintf(w, "%-12s %s\n", label+":", value)
	}
	line("Mission", l.MissionName)
	line("ID", l.ID)
	line("Rocket", l.RocketID)
	line("Launch Date", l.LongDate())
	line("Status", string(l.Status))
	if l.LaunchpadID != nil && *l.LaunchpadID != "" {
		line("Launchpad", *l.LaunchpadID)
	}
	if l.Details != nil && *l.Details != "" {
		line("Details", *l.Details)
	}
	for _, link := range l.Links() {
		line(link.Label, link.URL)
	}
}
