package app

import (
	"errors"
	"fmt"
	"sync"

	"tabbed-document-ui/internal/logger"
)

var ErrInvalidTransition = errors.New("invalid lifecycle transition")

type State int

const (
	Uninitialized State = iota
	Initialized
	UIBuilt
	Running
	Stopping
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Initialized:
		return "Initialized"
	case UIBuilt:
		return "UIBuilt"
	case Running:
		return "Running"
	case Stopping:
		return "Stopping"
	case Destroyed:
		return "Destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// transitions lists the legal successors of each state. A UI that was built
// but never ran, or whose loop ended without a close event, may still be
// destroyed.
var transitions = map[State][]State{
	Uninitialized: {Initialized},
	Initialized:   {UIBuilt},
	UIBuilt:       {Running, Destroyed},
	Running:       {Stopping, Destroyed},
	Stopping:      {Destroyed},
}

type Lifecycle struct {
	mu     sync.Mutex
	state  State
	logger logger.Logger
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{state: Uninitialized, logger: log}
}

func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Advance moves to the given state if the move is legal.
func (l *Lifecycle) Advance(to State) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	from := l.state
	for _, next := range transitions[from] {
		if next == to {
			l.state = to
			l.logger.Debug("Lifecycle", "state changed", map[string]interface{}{
				"from": from.String(),
				"to":   to.String(),
			})
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
