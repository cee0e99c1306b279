package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/luv2code/cruddemo/pkg/cruddemo"
)

func main() {
	// Cancelled on Ctrl-C or SIGTERM so that run shuts the server down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cruddemo.Main(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
