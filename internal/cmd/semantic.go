package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/internal/format"
)

var semanticCmd = &cobra.Command{
	Use:     "semantic <question...>",
	Aliases: []string{"ask"},
	Short:   "Search the catalog with a natural-language question",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := newClient().Semantic(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return format.OutputSemanticResults(results, outputFormat())
	},
}

func init() {
	rootCmd.AddCommand(semanticCmd)
}
