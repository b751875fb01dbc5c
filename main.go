// Package main implements the main entry point for an interactive system register viewer
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/regview/internal/cli"
	"github.com/retroenv/regview/internal/config"
	"github.com/retroenv/regview/internal/pipeline"
	"github.com/retroenv/regview/internal/terminal"
	"github.com/retroenv/retrogolib/app"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	interactive := terminal.IsTerminal(os.Stdin)
	if interactive && !opts.Dump && !opts.List {
		config.PrintBanner(logger, opts, version, commit, date)
	}

	p := pipeline.New(logger)
	stream := pipeline.IO{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: interactive,
	}
	if err := p.Execute(ctx, opts, stream); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal(err.Error())
	}
}
