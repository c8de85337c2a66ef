package events

import (
	"sync"

	"github.com/google/uuid"

	"tabbed-document-ui/internal/gui/handle"
)

type Kind int

const (
	WindowClose Kind = iota
	ButtonClick
)

func (k Kind) String() string {
	switch k {
	case WindowClose:
		return "WindowClose"
	case ButtonClick:
		return "ButtonClick"
	default:
		return "Unknown"
	}
}

// Event is delivered to every handler bound to Source.
type Event struct {
	Kind   Kind
	Source handle.Handle
}

type Handler func(Event)

// Binding is the registration returned by Bind. It is released by Unbind.
type Binding struct {
	id     string
	source handle.Handle
	fn     Handler
}

func (b *Binding) ID() string {
	return b.id
}

func (b *Binding) Source() handle.Handle {
	return b.source
}

// Binder owns handler registrations. Handlers run synchronously on the
// goroutine calling Dispatch, which is the toolkit's main goroutine.
type Binder struct {
	mu       sync.Mutex
	bindings []*Binding
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(source handle.Handle, fn Handler) *Binding {
	binding := &Binding{
		id:     uuid.NewString(),
		source: source,
		fn:     fn,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.bindings = append(b.bindings, binding)
	return binding
}

// Unbind reports whether the binding was still registered.
func (b *Binder) Unbind(binding *Binding) bool {
	if binding == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, existing := range b.bindings {
		if existing.id == binding.id {
			b.bindings = append(b.bindings[:i], b.bindings[i+1:]...)
			return true
		}
	}
	return false
}

// UnbindAll drains every registration and returns how many were released.
func (b *Binder) UnbindAll() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.bindings)
	b.bindings = nil
	return n
}

func (b *Binder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bindings)
}

// Dispatch returns the number of handlers invoked. The lock is not held
// while handlers run so a handler may unbind.
func (b *Binder) Dispatch(event Event) int {
	b.mu.Lock()
	var targets []Handler
	for _, binding := range b.bindings {
		if binding.source == event.Source {
			targets = append(targets, binding.fn)
		}
	}
	b.mu.Unlock()

	for _, fn := range targets {
		fn(event)
	}
	return len(targets)
}
