package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	setStatus string
	setTags   []string
)

var setCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update a document's status or tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if setStatus == "" && setTags == nil {
			return fmt.Errorf("nothing to update: pass --status and/or --tags")
		}

		id := args[0]
		client := newClient()
		if setStatus != "" {
			if err := client.SetStatus(cmd.Context(), id, setStatus); err != nil {
				return err
			}
			fmt.Printf("Status of %s set to %s\n", id, setStatus)
		}
		if setTags != nil {
			if err := client.SetTags(cmd.Context(), id, setTags); err != nil {
				return err
			}
			fmt.Printf("Tags of %s updated\n", id)
		}
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setStatus, "status", "", "new status (urgent, pending, review, approved, published)")
	setCmd.Flags().StringSliceVar(&setTags, "tags", nil, "replacement tag list, comma separated")
	rootCmd.AddCommand(setCmd)
}
