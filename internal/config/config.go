// Package config handles application configuration and setup
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/regview/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"gopkg.in/yaml.v3"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// File is the content of a YAML config file.
type File struct {
	Input   string `yaml:"input"`
	Batch   string `yaml:"batch"`
	Debug   bool   `yaml:"debug"`
	Quiet   bool   `yaml:"quiet"`
	Suggest bool   `yaml:"suggest"`
	Prompt  *bool  `yaml:"prompt"` // unset keeps the terminal detection
}

// Load reads the config file with the given name.
func Load(name string) (File, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return File{}, fmt.Errorf("reading config file %s: %w", name, err)
	}

	file, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("parsing config file %s: %w", name, err)
	}
	return file, nil
}

// Parse decodes a config file. Unknown keys are rejected, an empty
// document results in an empty config.
func Parse(data []byte) (File, error) {
	var file File

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decoding yaml: %w", err)
	}
	return file, nil
}

// Apply fills in the options that were not set on the command line.
func (f File) Apply(opts *options.Program) {
	if opts.Input == "" && opts.Batch == "" {
		opts.Input = f.Input
		opts.Batch = f.Batch
	}

	opts.Debug = opts.Debug || f.Debug
	opts.Quiet = opts.Quiet || f.Quiet
	opts.Suggest = opts.Suggest || f.Suggest

	if f.Prompt != nil && !opts.Prompt && !opts.NoPrompt {
		opts.Prompt = *f.Prompt
		opts.NoPrompt = !*f.Prompt
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("regview", log.String("version", buildinfo.Version(version, commit, date)))
}
