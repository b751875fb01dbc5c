package fsm

import (
	"strconv"
	"strings"
)

// EventKind is the kind of user input.
type EventKind int

const (
	// TextEvent is a name prefix.
	TextEvent EventKind = iota
	// NumberEvent is a candidate index or a value to decode.
	NumberEvent
)

// Event is one classified line of user input.
type Event struct {
	Kind   EventKind
	Text   string
	Number uint64
}

// Text returns a prefix event.
func Text(prefix string) Event {
	return Event{Kind: TextEvent, Text: prefix}
}

// Number returns a number event.
func Number(n uint64) Event {
	return Event{Kind: NumberEvent, Number: n}
}

// Classify converts a line of input to an event. The input is trimmed and
// lower cased, a leading 0x denotes a hexadecimal number, otherwise decimal
// numbers are tried before falling back to a text event.
// It returns false for an empty line, which ends a session.
func Classify(line string) (Event, bool) {
	input := strings.ToLower(strings.TrimSpace(line))
	if input == "" {
		return Event{}, false
	}

	if hex, ok := strings.CutPrefix(input, "0x"); ok {
		if n, err := strconv.ParseUint(hex, 16, 64); err == nil {
			return Number(n), true
		}
	}
	if n, err := strconv.ParseUint(input, 10, 64); err == nil {
		return Number(n), true
	}
	return Text(input), true
}
