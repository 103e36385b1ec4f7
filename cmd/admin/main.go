package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/cli"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/config"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
