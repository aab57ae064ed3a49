// Command propbind validates and inspects declarative binding files.
package main

import (
	"context"
	"os"
	"os/signal"

	"propbind/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
