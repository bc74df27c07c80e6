package cmd

import (
	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/format"
)

var (
	lsQuery string
	lsUnit  string
	lsType  string
	lsPage  int
	lsLimit int
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List documents matching a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := catalog.NewFilter()
		f.Query = lsQuery
		if lsUnit != "" {
			f.OrgUnit = lsUnit
		}
		if lsType != "" {
			f.Category = lsType
		}

		result, err := newClient().List(cmd.Context(), f, lsPage, effectiveLimit(lsLimit))
		if err != nil {
			return err
		}
		return format.OutputDocumentList(result.Documents, result.Pagination.Total, outputFormat())
	},
}

// effectiveLimit resolves the page size: an explicit flag wins, otherwise
// the configured page size applies.
func effectiveLimit(flag int) int {
	if flag > 0 {
		return flag
	}
	return cfg.PageSize
}

func init() {
	lsCmd.Flags().StringVarP(&lsQuery, "query", "q", "", "free-text search")
	lsCmd.Flags().StringVarP(&lsUnit, "unit", "u", "", "organizational unit (default: all)")
	lsCmd.Flags().StringVarP(&lsType, "type", "t", "", "document category (default: all-types)")
	lsCmd.Flags().IntVar(&lsPage, "page", 1, "result page")
	lsCmd.Flags().IntVar(&lsLimit, "limit", 0, "page size (default: configured page size)")
	rootCmd.AddCommand(lsCmd)
}
