package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gmkornilov/crazymoves-backend/internal/bootstrap"
	"github.com/gmkornilov/crazymoves-backend/internal/config"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/spf13/cobra"
)

func ListCmd() *cobra.Command {
	var answers bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the chess and football catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig()
			if err != nil {
				return err
			}
			catalogs, err := bootstrap.Catalogs(cfg)
			if err != nil {
				return err
			}
			printCatalogs(cmd, catalogs, answers)
			return nil
		},
	}
	cmd.Flags().BoolVar(&answers, "answers", false, "show answers")
	return cmd
}

func printCatalogs(cmd *cobra.Command, catalogs puzzle.Catalogs, answers bool) {
	out := cmd.OutOrStdout()
	heading := color.New(color.Bold)
	title := color.New(color.FgHiMagenta)
	dim := color.New(color.FgCyan)

	heading.Fprintf(out, "Chess (%d)\n", catalogs.Chess.Len())
	for i, p := range catalogs.Chess.Puzzles() {
		fmt.Fprintf(out, "%2d. %s [%s to move]\n", i+1, title.Sprint(p.Title), p.ToMove.Label())
		fmt.Fprintf(out, "    %s\n", dim.Sprint(catalogs.Chess.FEN(i)))
		if answers {
			fmt.Fprintf(out, "    answer: %s\n", p.Answer)
		}
	}

	heading.Fprintf(out, "Football (%d)\n", catalogs.Football.Len())
	for i, p := range catalogs.Football.Puzzles() {
		fmt.Fprintf(out, "%2d. %s\n", i+1, title.Sprint(p.Title))
		fmt.Fprintf(out, "    %s\n", dim.Sprint(p.Image))
		if answers {
			fmt.Fprintf(out, "    answer: %s\n", p.Answer)
		}
	}
}
