package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/palace/internal/buildinfo"
	"github.com/dmitrijs2005/palace/internal/client/cli"
	"github.com/dmitrijs2005/palace/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
