package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gmkornilov/crazymoves-backend/internal/bootstrap"
	"github.com/gmkornilov/crazymoves-backend/internal/config"
	"github.com/gmkornilov/crazymoves-backend/pkg/analysis"
	"github.com/spf13/cobra"
)

func CheckCmd() *cobra.Command {
	var noEngine bool
	var depth int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every chess answer is a legal (and good) move",
		Long: `Check plays every chess puzzle from its real side to move.
Without --no-engine the position is also searched by the UCI engine at
STOCKFISH_PATH and the stored answer is compared with the engine's best lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig()
			if err != nil {
				return err
			}
			catalogs, err := bootstrap.Catalogs(cfg)
			if err != nil {
				return err
			}

			var reports []analysis.Report
			if noEngine {
				for _, p := range catalogs.Chess.Puzzles() {
					rep, err := analysis.CheckLegal(p)
					if err != nil {
						return err
					}
					reports = append(reports, rep)
				}
			} else {
				e, err := analysis.SetupEngine(cfg.Stockfish.Path, cfg.Stockfish.Args...)
				if err != nil {
					return fmt.Errorf("failed to start engine %s: %w", cfg.Stockfish.Path, err)
				}
				defer e.Close()
				if depth <= 0 {
					depth = cfg.Stockfish.Depth
				}
				reports, err = analysis.NewChecker(e, depth).CheckAll(catalogs.Chess)
				if err != nil {
					return err
				}
			}

			if failed := printReports(cmd.OutOrStdout(), reports); failed > 0 {
				return fmt.Errorf("%d puzzle(s) failed the check", failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noEngine, "no-engine", false, "only check legality, without a UCI engine")
	cmd.Flags().IntVar(&depth, "depth", 0, "search depth (defaults to STOCKFISH_DEPTH)")
	return cmd
}

// printReports writes one line per puzzle and returns how many have an illegal answer.
func printReports(out io.Writer, reports []analysis.Report) int {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	failed := 0
	for i, rep := range reports {
		var status string
		switch {
		case !rep.Checked:
			status = warn.Sprint("SKIP")
		case !rep.Legal:
			status = bad.Sprint("FAIL")
			failed++
		case len(rep.EngineMoves) > 0 && !rep.AnswerIsBest:
			status = warn.Sprint("WEAK")
		default:
			status = ok.Sprint(" OK ")
		}
		fmt.Fprintf(out, "[%s] %d. %s: %s\n", status, i+1, rep.Title, rep.Answer)
		if rep.Note != "" {
			fmt.Fprintf(out, "       %s\n", rep.Note)
		}
		if len(rep.EngineMoves) > 0 {
			fmt.Fprintf(out, "       engine: %s\n", strings.Join(rep.EngineMoves, ", "))
		}
	}
	return failed
}
