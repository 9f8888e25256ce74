package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/hotelhub/internal/buildinfo"
	"github.com/dmitrijs2005/hotelhub/internal/client/cli"
	"github.com/dmitrijs2005/hotelhub/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// after the first signal a second one gets the default behaviour and
	// kills a CLI blocked in a prompt
	context.AfterFunc(ctx, stop)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
