package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dotdm/cdm/internal/cli"
	"github.com/dotdm/cdm/internal/cli/render"
	"github.com/dotdm/cdm/internal/config"
)

// Set via -ldflags at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.NewRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		stop()
		os.Exit(1)
	}
}
