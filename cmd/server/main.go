package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/maxviazov/offer-catalog-service/internal/cli"
)

func main() {
	path := cli.DefaultConfigPath
	if v := os.Getenv("APP_CONFIG_PATH"); v != "" {
		path = v
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Serve(ctx, path); err != nil {
		stop()
		log.Fatalf("❌ Service failed: %v", err)
	}
}
