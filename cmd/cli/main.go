package main

import (
	"context"
	"log"
	"os"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/buildinfo"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/cli"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("studyhub: %v", err)
	}

	app.Run(context.Background())
}
