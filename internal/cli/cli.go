// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/regview/internal/config"
	"github.com/retroenv/regview/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
// Values of a config file given with -c fill in options that were not set
// on the command line.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags}
	}

	args := flags.Args()
	if err := validateArgs(flags, args, opts); err != nil {
		return opts, err
	}
	if len(args) == 1 {
		opts.Input = args[0]
	}

	if opts.Config != "" {
		file, err := config.Load(opts.Config)
		if err != nil {
			return opts, fmt.Errorf("loading config: %w", err)
		}
		file.Apply(&opts)
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: regview [options] [register file]\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks the positional arguments.
func validateArgs(flags *flag.FlagSet, args []string, opts options.Program) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after register file, please pass the register file as last argument", arg),
			}
		}
	}

	switch {
	case len(args) > 1:
		return &UsageError{flags: flags, msg: "Only one register file can be passed, use -batch to load multiple files"}
	case len(args) == 1 && opts.Input != "":
		return &UsageError{flags: flags, msg: "Register file passed both as argument and with -i"}
	case len(args) == 1 && opts.Batch != "":
		return &UsageError{flags: flags, msg: "Register file argument can not be combined with -batch"}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the register description file, defaults to $REGVIEW_FILE or the user data directory")
	flags.StringVar(&opts.Config, "c", "", "name of a YAML config file to read defaults from")
	flags.StringVar(&opts.Batch, "batch", "", "load and merge all register files matching the given path and file mask, for example regs/*.asl")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Dump, "dump", false, "print the normalized register catalog and exit")
	flags.BoolVar(&opts.List, "list", false, "print all register names and exit")
	flags.BoolVar(&opts.Suggest, "suggest", false, "suggest similar register names if a name matches nothing")
	flags.BoolVar(&opts.Prompt, "prompt", false, "print the input prompt even if the input is not a terminal")
	flags.BoolVar(&opts.NoPrompt, "noprompt", false, "never print the input prompt")
}
