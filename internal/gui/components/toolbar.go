package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"tabbed-document-ui/internal/gui/handle"
	"tabbed-document-ui/internal/gui/layout"
)

// ToolbarButtonSize is the cell every toolbar button occupies.
var ToolbarButtonSize = fyne.NewSize(100, 32)

// Toolbar is a frame holding the document actions. New and Open have no
// implementation and are built disabled.
type Toolbar struct {
	Handle   handle.Handle
	Frame    *fyne.Container
	Home     *Button
	New      *Button
	Open     *Button
	CloseAll *Button
}

type ToolbarOptions struct {
	Parent  handle.Handle
	OnClick func(handle.Handle)
}

func NewToolbar(opts ToolbarOptions) (*Toolbar, error) {
	if opts.Parent.IsNil() {
		return nil, fmt.Errorf("toolbar: %w", ErrMissingParent)
	}

	t := &Toolbar{Handle: handle.New()}

	specs := []struct {
		dst      **Button
		text     string
		disabled bool
	}{
		{&t.Home, "Home", false},
		{&t.New, "New", true},
		{&t.Open, "Open", true},
		{&t.CloseAll, "Close all", false},
	}

	objects := make([]fyne.CanvasObject, 0, len(specs))
	for _, s := range specs {
		b, err := NewButton(ButtonOptions{
			Parent:   t.Handle,
			Text:     s.text,
			Size:     ToolbarButtonSize,
			Disabled: s.disabled,
			OnClick:  opts.OnClick,
		})
		if err != nil {
			return nil, fmt.Errorf("toolbar: %w", err)
		}
		*s.dst = b
		objects = append(objects, b.Widget)
	}

	t.Frame = container.New(layout.NewButtonRowLayout(ToolbarButtonSize), objects...)
	return t, nil
}

// Buttons returns the buttons in display order.
func (t *Toolbar) Buttons() []*Button {
	return []*Button{t.Home, t.New, t.Open, t.CloseAll}
}
