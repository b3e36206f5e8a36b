package cli

import (
	"fmt"

	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/spf13/cobra"
)

func FenCmd() *cobra.Command {
	var white, black []string
	var draw bool

	cmd := &cobra.Command{
		Use:   "fen",
		Short: "Encode placement tokens as a position string",
		Example: `  puzzlectl fen --white Ka1 --black Kb8
  puzzlectl fen --white Kb1,Qd2,Rd1 --black Kb8,Rh8 --draw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fen, err := puzzle.Encode(puzzle.ChessPuzzle{White: white, Black: black})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fen)
			if draw {
				g, err := puzzle.Decode(fen)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), g.Board().Draw())
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&white, "white", "w", nil, "white placement tokens (e.g. Ka1,Pa2)")
	cmd.Flags().StringSliceVarP(&black, "black", "b", nil, "black placement tokens (e.g. Kb8)")
	cmd.Flags().BoolVar(&draw, "draw", false, "also draw the board")
	return cmd
}
