// Package bootstrap picks the catalog source and session store from configuration.
package bootstrap

import (
	"fmt"
	"log"

	"github.com/gmkornilov/crazymoves-backend/internal/config"
	"github.com/gmkornilov/crazymoves-backend/internal/dao"
	"github.com/gmkornilov/crazymoves-backend/internal/db"
	"github.com/gmkornilov/crazymoves-backend/internal/session"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
)

// Catalogs loads the catalogs from, in order of preference, CATALOG_FILE,
// MongoDB and the built-in puzzles.
func Catalogs(cfg *config.Configuration) (puzzle.Catalogs, error) {
	if cfg.Catalog.File != "" {
		log.Printf("Loading catalogs from %s\n", cfg.Catalog.File)
		return puzzle.LoadCatalogFile(cfg.Catalog.File)
	}
	if cfg.UseMongo() {
		log.Printf("Loading catalogs from %s/%s\n", cfg.Database.DatabaseName, cfg.Database.Collection)
		client, err := db.NewDbClient(cfg)
		if err != nil {
			return puzzle.Catalogs{}, err
		}
		defer client.Close()
		return dao.LoadCatalogs(dao.NewPuzzleRepository(client))
	}
	log.Println("Using built-in catalogs")
	return puzzle.Builtin()
}

func Sessions(cfg *config.Configuration, catalogs puzzle.Catalogs) (session.Store, error) {
	switch cfg.Sessions.Store {
	case config.SessionStoreMemory:
		return session.NewMemoryStore(catalogs, cfg.Sessions.IdleTimeout), nil
	case config.SessionStoreSqlite:
		log.Printf("Storing sessions in %s\n", cfg.Sessions.SqlitePath)
		return session.OpenSqlite(cfg.Sessions.SqlitePath, catalogs)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Sessions.Store)
	}
}
