package main

import (
	"os"

	"github.com/spf13/cobra"

	"testertalk/internal/interfaces/cli/migrate"
	"testertalk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "testertalk",
		Short: "Tester Talk - internal issue tracker for test-automation failures",
		Long:  `Tester Talk tracks failing automation testcases: reported issues, reviewer assignment, duplicate path detection and the discussion around each failure.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
