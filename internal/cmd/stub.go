package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docdeck/docdeck/internal/stub"
)

var (
	stubAddr string
	stubSeed bool
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local stand-in for the remote document store",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		server := stub.New(logger)
		if stubSeed {
			stub.Seed(server)
		}
		fmt.Printf("Serving document store stub on %s\n", stubAddr)
		return server.Run(stubAddr)
	},
}

func init() {
	stubCmd.Flags().StringVar(&stubAddr, "addr", ":5000", "listen address")
	stubCmd.Flags().BoolVar(&stubSeed, "seed", true, "start with a few sample documents")
	rootCmd.AddCommand(stubCmd)
}
