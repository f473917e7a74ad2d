package main

import (
	"context"
	"log"
	"os"

	"github.com/rzeqiri/jobportal/internal/buildinfo"
	"github.com/rzeqiri/jobportal/internal/cli"
	"github.com/rzeqiri/jobportal/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
