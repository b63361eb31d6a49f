package main

import (
	"context"
	"fmt"
	"os"

	"github.com/maxviazov/offer-catalog-service/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.0.1"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "offerctl:", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version).ExecuteContext(context.Background())
}
