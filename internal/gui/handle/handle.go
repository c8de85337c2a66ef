// Package handle identifies widgets so events can name their source.
package handle

import "github.com/google/uuid"

// Handle is the identity of one constructed widget.
type Handle uuid.UUID

// Nil is the zero handle; no widget ever carries it.
var Nil Handle

func New() Handle {
	return Handle(uuid.New())
}

func (h Handle) IsNil() bool {
	return h == Nil
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}
