package cmd

import (
	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/internal/format"
)

var getFull bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := newClient().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return format.OutputDocumentDetail(doc, outputFormat(), getFull)
	},
}

func init() {
	getCmd.Flags().BoolVar(&getFull, "full", false, "include extracted text and tables")
	rootCmd.AddCommand(getCmd)
}
