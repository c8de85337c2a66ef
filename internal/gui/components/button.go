package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"tabbed-document-ui/internal/gui/handle"
)

type Button struct {
	Handle handle.Handle
	Parent handle.Handle
	Widget *widget.Button
}

type ButtonOptions struct {
	Parent   handle.Handle
	Text     string
	Size     fyne.Size
	Disabled bool
	// OnClick receives the button's own handle.
	OnClick func(handle.Handle)
}

func NewButton(opts ButtonOptions) (*Button, error) {
	if opts.Parent.IsNil() {
		return nil, fmt.Errorf("button %q: %w", opts.Text, ErrMissingParent)
	}
	if opts.Text == "" {
		return nil, fmt.Errorf("button: %w", ErrEmptyText)
	}
	if opts.Size.Width <= 0 || opts.Size.Height <= 0 {
		return nil, fmt.Errorf("button %q: %w", opts.Text, ErrInvalidSize)
	}

	b := &Button{Handle: handle.New(), Parent: opts.Parent}
	b.Widget = widget.NewButton(opts.Text, func() {
		if opts.OnClick != nil {
			opts.OnClick(b.Handle)
		}
	})
	if opts.Disabled {
		b.Widget.Disable()
	}
	return b, nil
}

func (b *Button) Text() string {
	return b.Widget.Text
}

func (b *Button) Enabled() bool {
	return !b.Widget.Disabled()
}
