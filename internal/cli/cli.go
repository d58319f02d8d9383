// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator
// options.
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	emuOpts := options.NewEmulator()
	readOptionFlags(flags, &opts, &emuOpts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, emuOpts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, emuOpts, err
	}

	if err := normalizeOptions(&opts, &emuOpts); err != nil {
		return opts, emuOpts, err
	}

	opts.Input = args[0]
	return opts, emuOpts, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <rom file>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values.
func normalizeOptions(opts *options.Program, emuOpts *options.Emulator) error {
	if emuOpts.InstructionsPerFrame < 1 {
		return fmt.Errorf("instructions per frame must be at least 1, got %d", emuOpts.InstructionsPerFrame)
	}

	// trace output is emitted at debug level
	if emuOpts.TraceExecution {
		opts.Debug = true
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, emuOpts *options.Emulator) {
	flags.IntVar(&emuOpts.InstructionsPerFrame, "ipf", emuOpts.InstructionsPerFrame, "instructions to execute per 60 Hz frame")
	flags.BoolVar(&emuOpts.TraceExecution, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
