package components

import (
	"fmt"

	"fyne.io/fyne/v2"

	"tabbed-document-ui/internal/gui/handle"
)

// Window is the top-level window. Only one is built per process.
type Window struct {
	Handle handle.Handle
	Native fyne.Window
}

type WindowOptions struct {
	Title string
	Size  fyne.Size
}

func NewWindow(app fyne.App, opts WindowOptions) (*Window, error) {
	if app == nil {
		return nil, fmt.Errorf("window %q: %w", opts.Title, ErrMissingParent)
	}
	if opts.Title == "" {
		return nil, fmt.Errorf("window: %w", ErrEmptyText)
	}
	if opts.Size.Width <= 0 || opts.Size.Height <= 0 {
		return nil, fmt.Errorf("window %q: %w", opts.Title, ErrInvalidSize)
	}

	native := app.NewWindow(opts.Title)
	native.Resize(opts.Size)
	native.SetPadded(false)
	native.SetMaster()

	return &Window{Handle: handle.New(), Native: native}, nil
}
