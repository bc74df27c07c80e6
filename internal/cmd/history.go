package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/internal/format"
	"github.com/docdeck/docdeck/internal/storage"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches and uploads",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := cfg.GetHistoryPath()
		if err != nil {
			return err
		}
		db, err := storage.New(path)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer db.Close()

		if historyClear {
			if err := db.ClearHistory(); err != nil {
				return err
			}
			fmt.Println("History cleared")
			return nil
		}

		searches, err := db.RecentSearches(historyLimit)
		if err != nil {
			return err
		}
		uploads, err := db.RecentUploads(historyLimit)
		if err != nil {
			return err
		}
		return format.OutputHistory(searches, uploads, outputFormat())
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "remove all recorded history")
	rootCmd.AddCommand(historyCmd)
}
