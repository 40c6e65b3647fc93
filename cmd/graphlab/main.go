// Command graphlab loads, generates, lays out, analyses, renders and stores
// undirected weighted graphs from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cxt := NewContext(os.Stdin, os.Stdout, os.Stderr)
	if err := execute(ctx, cxt, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "graphlab:", err)
		stop()
		os.Exit(1)
	}
}
