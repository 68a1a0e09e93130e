package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"book-catalog/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "book-catalog exited with error: %v\n", err)
		os.Exit(1)
	}
}
