package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/facetview/cmd"
	"github.com/thenoetrevino/facetview/internal/cli"
	"github.com/thenoetrevino/facetview/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(cli.ExitCode(err))
	}
}
