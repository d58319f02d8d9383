// Package main implements a CHIP-8 emulator for the terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/runner"
	"github.com/retroenv/chip8emu/internal/terminal"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, emuOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts, emuOpts); err != nil {
		// Ctrl+C is a clean shutdown
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("chip8emu - CHIP-8 emulator",
		log.String("version", buildinfo.Version(version, commit, date)),
	)
}

func run(ctx context.Context, logger *log.Logger, opts options.Program, emuOpts options.Emulator) error {
	image, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM image: %w", err)
	}

	if !opts.Quiet {
		logger.Info("Running ROM", log.String("file", opts.Input))
	}

	state := chip8.NewState()
	state.LoadImage(image)

	frontend, err := terminal.New()
	if err != nil {
		return fmt.Errorf("initializing terminal frontend: %w", err)
	}
	defer frontend.Close()

	return runner.New(logger, state, frontend, emuOpts).Run(ctx)
}
