package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gmkornilov/crazymoves-backend/internal/api"
	"github.com/gmkornilov/crazymoves-backend/internal/bootstrap"
	"github.com/gmkornilov/crazymoves-backend/internal/config"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		panic(err)
	}

	catalogs, err := bootstrap.Catalogs(cfg)
	if err != nil {
		panic(err)
	}

	sessions, err := bootstrap.Sessions(cfg, catalogs)
	if err != nil {
		panic(err)
	}
	defer sessions.Close()

	r := gin.Default()
	api.NewSlideshowApi(sessions, catalogs).Register(r)

	log.Printf("Serving %d chess and %d football puzzles on %s\n",
		catalogs.Chess.Len(), catalogs.Football.Len(), cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		panic(err)
	}
}
