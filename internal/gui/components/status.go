package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tabbed-document-ui/internal/gui/handle"
)

type StatusBar struct {
	Handle    handle.Handle
	container *fyne.Container
	label     *widget.Label
}

type StatusBarOptions struct {
	Parent handle.Handle
	Text   string
}

func NewStatusBar(opts StatusBarOptions) (*StatusBar, error) {
	if opts.Parent.IsNil() {
		return nil, fmt.Errorf("status bar: %w", ErrMissingParent)
	}
	if opts.Text == "" {
		return nil, fmt.Errorf("status bar: %w", ErrEmptyText)
	}

	label := widget.NewLabel(opts.Text)
	return &StatusBar{
		Handle:    handle.New(),
		container: container.NewVBox(widget.NewSeparator(), label),
		label:     label,
	}, nil
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) Text() string {
	return sb.label.Text
}
