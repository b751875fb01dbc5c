// Package detector resolves which register description files to load.
package detector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/regview/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/xyproto/env/v2"
)

const (
	// FileVariable names the environment variable holding the default register file.
	FileVariable = "REGVIEW_FILE"

	dataDirName     = "regview"
	defaultFileName = "regs.asl"
)

// ErrNoMatch is returned if a batch pattern matches no files.
var ErrNoMatch = errors.New("no files match the batch pattern")

// LookupFunc returns the value of an environment variable or the default
// if it is not set.
type LookupFunc func(name string, defaultValue ...string) string

// Detector resolves register files from options and the environment.
type Detector struct {
	logger *log.Logger
	lookup LookupFunc
}

// New creates a new detector that reads the process environment.
func New(logger *log.Logger) *Detector {
	return NewWithLookup(logger, env.Str)
}

// NewWithLookup creates a new detector that reads environment variables
// using the given function.
func NewWithLookup(logger *log.Logger, lookup LookupFunc) *Detector {
	return &Detector{
		logger: logger,
		lookup: lookup,
	}
}

// Detect returns the register files to load, in load order.
// A batch pattern takes precedence, followed by an explicitly passed file,
// the file named by REGVIEW_FILE and finally regs.asl in the user data
// directory.
func (d *Detector) Detect(opts options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, opts.Batch)
		}
		d.logger.Debug("Matched batch pattern",
			log.String("pattern", opts.Batch),
			log.Int("files", len(matches)))
		return matches, nil
	}

	if opts.Input != "" {
		return []string{opts.Input}, nil
	}

	if file := d.lookup(FileVariable); file != "" {
		d.logger.Debug("Using register file from environment", log.String("file", file))
		return []string{file}, nil
	}

	dir, err := d.dataDir()
	if err != nil {
		return nil, err
	}
	file := filepath.Join(dir, dataDirName, defaultFileName)
	d.logger.Debug("Using default register file", log.String("file", file))
	return []string{file}, nil
}

// dataDir returns the user data directory following the XDG base
// directory convention.
func (d *Detector) dataDir() (string, error) {
	if dir := d.lookup("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}

	home := d.lookup("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("determining data directory: %w", err)
		}
	}
	return filepath.Join(home, ".local", "share"), nil
}
