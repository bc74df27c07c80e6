package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var starCmd = &cobra.Command{
	Use:   "star <id>",
	Short: "Star a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SetStarred(cmd.Context(), args[0], true); err != nil {
			return err
		}
		fmt.Printf("Starred %s\n", args[0])
		return nil
	},
}

var unstarCmd = &cobra.Command{
	Use:   "unstar <id>",
	Short: "Remove the star from a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SetStarred(cmd.Context(), args[0], false); err != nil {
			return err
		}
		fmt.Printf("Unstarred %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(starCmd)
	rootCmd.AddCommand(unstarCmd)
}
