package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the remote store is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().Health(cmd.Context()); err != nil {
			return fmt.Errorf("%s is not healthy: %w", cfg.APIBaseURL, err)
		}
		fmt.Printf("%s is healthy\n", cfg.APIBaseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
