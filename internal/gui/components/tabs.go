package components

import (
	"fmt"

	"fyne.io/fyne/v2/container"

	"tabbed-document-ui/internal/gui/handle"
)

// TabsContainer holds the document tabs in display order.
type TabsContainer struct {
	Handle handle.Handle
	Widget *container.AppTabs
	tabs   []*Tab
}

type TabsContainerOptions struct {
	Parent handle.Handle
}

func NewTabsContainer(opts TabsContainerOptions) (*TabsContainer, error) {
	if opts.Parent.IsNil() {
		return nil, fmt.Errorf("tabs container: %w", ErrMissingParent)
	}
	return &TabsContainer{
		Handle: handle.New(),
		Widget: container.NewAppTabs(),
	}, nil
}

func (tc *TabsContainer) Tabs() []*Tab {
	out := make([]*Tab, len(tc.tabs))
	copy(out, tc.tabs)
	return out
}

func (tc *TabsContainer) Len() int {
	return len(tc.tabs)
}

type Tab struct {
	Handle handle.Handle
	Item   *container.TabItem
}

type TabOptions struct {
	Parent *TabsContainer
	Text   string
}

// NewTab builds an empty tab and appends it to its parent container.
func NewTab(opts TabOptions) (*Tab, error) {
	if opts.Parent == nil {
		return nil, fmt.Errorf("tab %q: %w", opts.Text, ErrMissingParent)
	}
	if opts.Text == "" {
		return nil, fmt.Errorf("tab: %w", ErrEmptyText)
	}

	tab := &Tab{
		Handle: handle.New(),
		Item:   container.NewTabItem(opts.Text, container.NewStack()),
	}
	opts.Parent.Widget.Append(tab.Item)
	opts.Parent.tabs = append(opts.Parent.tabs, tab)
	return tab, nil
}

func (t *Tab) Title() string {
	return t.Item.Text
}
