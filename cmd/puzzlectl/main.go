package main

import (
	"fmt"
	"os"

	"github.com/gmkornilov/crazymoves-backend/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "puzzlectl",
		Short: "Operator tool for the CrazyMoves puzzle catalogs",
		Long: `puzzlectl encodes positions, lists and checks the puzzle catalogs,
seeds them into MongoDB and can run the slideshow in a terminal.
Configuration is read from the same environment variables as the backend.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.FenCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.PlayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
