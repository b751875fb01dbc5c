// Package fsm implements a state machine that narrows down a set of named
// items by prefix input until a single item is selected.
//
// The machine knows nothing about the items themselves. Candidates for a
// prefix come from a caller supplied function, a selected item can be
// refined with a number by its Update method.
package fsm

// Item is a value that can be refined by a number without changing which
// item it refers to.
type Item[T any] interface {
	Update(value uint64) T
}

// CandidatesFunc returns all items matching a prefix, in display order.
type CandidatesFunc[T any] func(prefix string) []T

// Kind is the kind of a state.
type Kind int

const (
	// Empty means nothing is selected.
	Empty Kind = iota
	// Ambiguous means a prefix matched multiple candidates, an index is
	// needed to pick one of them.
	Ambiguous
	// Selected means exactly one item is selected.
	Selected
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Ambiguous:
		return "ambiguous"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

// State is the state of the machine. Prefix and Candidates are set for
// Ambiguous, Item for Selected.
type State[T any] struct {
	Kind       Kind
	Prefix     string
	Candidates []T
	Item       T
}

// Transition returns the state following the given state for the event.
// It has no side effects besides calling candidates for text events in the
// Empty and Selected states.
func Transition[T Item[T]](state State[T], event Event, candidates CandidatesFunc[T]) State[T] {
	switch state.Kind {
	case Ambiguous:
		if event.Kind == NumberEvent && event.Number < uint64(len(state.Candidates)) {
			return State[T]{Kind: Selected, Item: state.Candidates[event.Number]}
		}
		return state

	case Selected:
		if event.Kind == NumberEvent {
			return State[T]{Kind: Selected, Item: state.Item.Update(event.Number)}
		}
		return resolve(candidates(event.Text), event.Text)

	default:
		if event.Kind == NumberEvent {
			return State[T]{}
		}
		return resolve(candidates(event.Text), event.Text)
	}
}

// resolve returns the state for the candidates found for a prefix.
func resolve[T any](list []T, prefix string) State[T] {
	switch len(list) {
	case 0:
		return State[T]{}
	case 1:
		return State[T]{Kind: Selected, Item: list[0]}
	default:
		return State[T]{Kind: Ambiguous, Prefix: prefix, Candidates: list}
	}
}

// Engine holds the current state of one session.
// It is not safe for concurrent use, every session needs its own engine.
type Engine[T Item[T]] struct {
	state      State[T]
	candidates CandidatesFunc[T]
}

// New returns an engine in the Empty state.
func New[T Item[T]](candidates CandidatesFunc[T]) *Engine[T] {
	return &Engine[T]{
		candidates: candidates,
	}
}

// Next applies the event and returns the new state.
func (e *Engine[T]) Next(event Event) State[T] {
	e.state = Transition(e.state, event, e.candidates)
	return e.state
}

// State returns the current state.
func (e *Engine[T]) State() State[T] {
	return e.state
}
