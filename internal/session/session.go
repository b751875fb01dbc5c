// Package session implements the interactive register lookup loop.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/regview/internal/catalog"
	"github.com/retroenv/regview/internal/fsm"
	"github.com/retroenv/regview/internal/register"
	"github.com/retroenv/regview/internal/render"
	"github.com/retroenv/regview/internal/suggest"
	"github.com/retroenv/retrogolib/log"
)

const maxSuggestions = 5

// Options control the session output.
type Options struct {
	Prompt  bool // print the intro and a prompt before reading each line
	Suggest bool // print similar register names if a prefix matched nothing
}

// Session looks up registers of a catalog by the lines read from an input.
// Every session has its own state, the catalog can be shared.
type Session struct {
	logger  *log.Logger
	catalog *catalog.Catalog
	options Options
	engine  *fsm.Engine[register.Selection]
}

// New returns a new session for the given catalog.
func New(logger *log.Logger, cat *catalog.Catalog, options Options) *Session {
	s := &Session{
		logger:  logger,
		catalog: cat,
		options: options,
	}
	s.engine = fsm.New(s.candidates)
	return s
}

// candidates returns the catalog registers matching the prefix.
func (s *Session) candidates(prefix string) []register.Selection {
	descs := s.catalog.QueryPrefix(prefix)
	result := make([]register.Selection, len(descs))
	for i, desc := range descs {
		result[i] = desc.Select()
	}
	return result
}

type line struct {
	text string
	err  error
}

// Run reads lines from the input until an empty line or the end of the
// input and writes the state after every line to the output.
// It returns the context error if the context is canceled while waiting
// for input. The line reader stops when Run returns.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, in)

	if s.options.Prompt {
		if _, err := fmt.Fprintln(out, "Enter register names:"); err != nil {
			return fmt.Errorf("writing intro: %w", err)
		}
	}

	for {
		if err := s.writePrompt(out); err != nil {
			return err
		}

		var input line
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case input, ok = <-lines:
		}

		if !ok {
			return nil
		}
		if input.err != nil {
			return fmt.Errorf("reading input: %w", input.err)
		}

		event, ok := fsm.Classify(input.text)
		if !ok {
			return nil
		}

		if err := s.Handle(out, event); err != nil {
			return err
		}
	}
}

// Handle applies a single event and writes the resulting state.
func (s *Session) Handle(out io.Writer, event fsm.Event) error {
	previous := s.engine.State().Kind
	state := s.engine.Next(event)

	s.logger.Debug("State transition",
		log.String("from", previous.String()),
		log.String("to", state.Kind.String()))

	switch state.Kind {
	case fsm.Selected:
		if err := render.Register(out, state.Item); err != nil {
			return fmt.Errorf("rendering register: %w", err)
		}

	case fsm.Ambiguous:
		if previous == fsm.Ambiguous {
			return nil // ignored input keeps the candidate list
		}
		if err := render.Candidates(out, state.Candidates); err != nil {
			return fmt.Errorf("rendering candidates: %w", err)
		}

	case fsm.Empty:
		if event.Kind == fsm.TextEvent && s.options.Suggest {
			return s.writeSuggestions(out, event.Text)
		}
	}
	return nil
}

// State returns the current lookup state.
func (s *Session) State() fsm.State[register.Selection] {
	return s.engine.State()
}

func (s *Session) writePrompt(out io.Writer) error {
	if !s.options.Prompt {
		return nil
	}

	var prompt string
	state := s.engine.State()
	switch state.Kind {
	case fsm.Ambiguous:
		prompt = state.Prefix
	case fsm.Selected:
		prompt = state.Item.Name()
	}

	if _, err := fmt.Fprintf(out, "%s> ", prompt); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}

func (s *Session) writeSuggestions(out io.Writer, prefix string) error {
	names := suggest.Closest(prefix, s.catalog.Names(), maxSuggestions)
	if len(names) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(out, "no register matches %q, did you mean: %s\n", prefix, strings.Join(names, ", ")); err != nil {
		return fmt.Errorf("writing suggestions: %w", err)
	}
	return nil
}

// readLines delivers the lines of the input on the returned channel, which
// is closed at the end of the input. Reading stops after an error.
func readLines(ctx context.Context, in io.Reader) <-chan line {
	lines := make(chan line)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- line{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}
