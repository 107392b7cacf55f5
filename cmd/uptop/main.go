package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/prabalesh/uptop/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
