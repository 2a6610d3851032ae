package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the launches API is reachable",
		Args:  cobra.NoArgs,
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
			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API:    %s\n", client.BaseURL())
			fmt.Fprintf(out, "Status: %s\n", health.Status)
			if health.Table != "" {
				fmt.Fprintf(out, "Table:  %s\n", health.Table)
			}
			return nil
		},
	}
}
