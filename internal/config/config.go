package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreSqlite = "sqlite"
)

type Configuration struct {
	Server struct {
		Host string `envconfig:"SERVER_HOST"`
		Port string `envconfig:"SERVER_PORT" default:"8080"`
	}
	Database struct {
		Address      string `envconfig:"MONGO_ADDRESS"`
		DatabaseName string `envconfig:"MONGO_DATABASE" default:"crazymoves"`
		Collection   string `envconfig:"MONGO_COLLECTION" default:"puzzles"`
	}
	Sessions struct {
		Store       string        `envconfig:"SESSION_STORE" default:"memory"`
		SqlitePath  string        `envconfig:"SQLITE_PATH" default:"sessions.db"`
		IdleTimeout time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"30m"`
	}
	Catalog struct {
		File string `envconfig:"CATALOG_FILE"`
	}
	Stockfish struct {
		Path  string   `envconfig:"STOCKFISH_PATH" default:"stockfish"`
		Args  []string `envconfig:"STOCKFISH_ARGS"`
		Depth int      `envconfig:"STOCKFISH_DEPTH" default:"10"`
	}
}

// Addr is the listen address of the HTTP server.
func (c *Configuration) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// UseMongo reports whether catalogs come from MongoDB.
func (c *Configuration) UseMongo() bool {
	return c.Database.Address != ""
}

func InitConfig() (*Configuration, error) {
	var config Configuration
	err := envconfig.Process("", &config)
	return &config, err
}
