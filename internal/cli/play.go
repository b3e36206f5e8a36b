package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gmkornilov/crazymoves-backend/internal/bootstrap"
	"github.com/gmkornilov/crazymoves-backend/internal/config"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/gmkornilov/crazymoves-backend/pkg/sequence"
	"github.com/spf13/cobra"
)

const progressBarWidth = 20

func PlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run the puzzle slideshow in the terminal",
		Long: `Play shows the chess puzzles one at a time, then the football puzzles.
Commands: r (reveal answer), n (next), u (unlock football), q (quit).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig()
			if err != nil {
				return err
			}
			catalogs, err := bootstrap.Catalogs(cfg)
			if err != nil {
				return err
			}
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), sequence.New(catalogs))
		},
	}
}

func play(in io.Reader, out io.Writer, show *sequence.Slideshow) error {
	view := show.Start()
	printView(out, view)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		var err error
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "r", "reveal":
			view = show.OnRevealAnswer()
		case "n", "next":
			view = show.OnNext()
		case "u", "unlock":
			view, err = show.OnUnlockNext()
		case "q", "quit":
			return nil
		default:
			fmt.Fprintln(out, "commands: r (reveal), n (next), u (unlock), q (quit)")
			continue
		}
		if errors.Is(err, sequence.ErrLocked) {
			color.New(color.FgRed).Fprintln(out, err.Error())
			continue
		}
		printView(out, view)
		if view.Stage == sequence.StageFootball && view.Completed {
			return nil
		}
	}
}

func printView(out io.Writer, v sequence.View) {
	if v.Completed {
		color.New(color.Bold, color.FgHiMagenta).Fprintln(out, v.Headline)
		fmt.Fprintln(out, v.Message)
		fmt.Fprintln(out, v.Footer)
		return
	}

	filled := int(v.Progress / 100 * progressBarWidth)
	fmt.Fprintf(out, "[%s%s] %s\n",
		strings.Repeat("#", filled), strings.Repeat("-", progressBarWidth-filled), v.ProgressText)
	color.New(color.Bold).Fprintln(out, v.Title)

	if v.Stage == sequence.StageChess {
		fmt.Fprintf(out, "%s to move\n", v.Turn)
		if g, err := puzzle.Decode(v.FEN); err == nil {
			fmt.Fprint(out, g.Board().Draw())
		}
	} else {
		fmt.Fprintf(out, "image: %s\n", v.Image)
	}

	if v.AnswerShown {
		color.New(color.FgGreen).Fprintf(out, "Answer: %s\n", v.Answer)
	}
}
