package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sharefile/internal/buildinfo"
	"github.com/dmitrijs2005/sharefile/internal/client/cli"
	"github.com/dmitrijs2005/sharefile/internal/client/config"
)

func main() {
	cfg, files, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if len(files) == 0 {
		buildinfo.PrintBuildData(os.Stdout)
	}

	if err := run(cfg, files); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, files []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, closeFn, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return err
	}
	defer func() {
		if err := closeFn(); err != nil {
			log.Printf("close history: %v", err)
		}
	}()

	return app.Run(ctx, files)
}
