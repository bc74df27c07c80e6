package cmd

import (
	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/internal/format"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient().Stats(cmd.Context())
		if err != nil {
			return err
		}
		return format.OutputStats(stats, outputFormat())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
