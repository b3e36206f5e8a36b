package cli

import (
	"fmt"

	"github.com/gmkornilov/crazymoves-backend/internal/config"
	"github.com/gmkornilov/crazymoves-backend/internal/dao"
	"github.com/gmkornilov/crazymoves-backend/internal/db"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/spf13/cobra"
)

func SeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the MongoDB catalogs with the built-in (or a file's) puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig()
			if err != nil {
				return err
			}
			if !cfg.UseMongo() {
				return fmt.Errorf("MONGO_ADDRESS is not set")
			}

			catalogs, err := puzzle.Builtin()
			if file != "" {
				catalogs, err = puzzle.LoadCatalogFile(file)
			}
			if err != nil {
				return err
			}

			client, err := db.NewDbClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := dao.NewPuzzleRepository(client).ReplaceCatalogs(catalogs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d chess and %d football puzzles\n",
				catalogs.Chess.Len(), catalogs.Football.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog file to seed from")
	return cmd
}
