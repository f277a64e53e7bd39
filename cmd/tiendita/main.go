package main

import (
	"context"
	"log"

	"github.com/dmarquez/tiendita/internal/cli"
	"github.com/dmarquez/tiendita/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
