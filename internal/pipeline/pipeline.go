// Package pipeline orchestrates the register viewer workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/regview/internal/catalog"
	"github.com/retroenv/regview/internal/detector"
	"github.com/retroenv/regview/internal/loader"
	"github.com/retroenv/regview/internal/options"
	"github.com/retroenv/regview/internal/render"
	"github.com/retroenv/regview/internal/session"
	"github.com/retroenv/retrogolib/log"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Pipeline orchestrates the complete register viewer workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return NewWithDetector(logger, detector.New(logger))
}

// NewWithDetector creates a new pipeline that resolves register files
// with the given detector.
func NewWithDetector(logger *log.Logger, det *detector.Detector) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: det,
		loader:   loader.New(),
	}
}

// IO holds the streams of an interactive session.
type IO struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool // input is a terminal
}

// Execute loads the register catalog and runs the action selected by the
// options: dumping the catalog, listing the register names or running an
// interactive lookup session.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, stream IO) error {
	cat, err := p.LoadCatalog(opts)
	if err != nil {
		return err
	}

	switch {
	case opts.Dump:
		dumpConfig.Fdump(stream.Out, cat.Descriptors())
		return nil

	case opts.List:
		if err := render.Names(stream.Out, registerNames(cat)); err != nil {
			return fmt.Errorf("listing registers: %w", err)
		}
		return nil
	}

	s := session.New(p.logger, cat, session.Options{
		Prompt:  opts.ShowPrompt(stream.Interactive),
		Suggest: opts.Suggest,
	})
	if err := s.Run(ctx, stream.In, stream.Out); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}

// LoadCatalog resolves, loads and normalizes the register files.
func (p *Pipeline) LoadCatalog(opts options.Program) (*catalog.Catalog, error) {
	files, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting register files: %w", err)
	}

	statements, err := p.loader.Load(files)
	if err != nil {
		return nil, fmt.Errorf("loading registers: %w", err)
	}

	cat, skipped := catalog.Build(p.logger, statements)
	if skipped > 0 {
		p.logger.Info("Skipped registers", log.Int("count", skipped))
	}
	p.logger.Debug("Loaded register catalog",
		log.Int("registers", cat.Len()),
		log.Int("files", len(files)))

	return cat, nil
}

// registerNames returns the register names as declared, ordered by their
// case folded names.
func registerNames(cat *catalog.Catalog) []string {
	descs := cat.Descriptors()
	names := make([]string, len(descs))
	for i, desc := range descs {
		names[i] = desc.Name
	}
	return names
}
