package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabbed-document-ui/internal/config"
	"tabbed-document-ui/internal/gui/components"
	"tabbed-document-ui/internal/gui/events"
	"tabbed-document-ui/internal/logger"
)

func buildTestUI(t *testing.T) (*UI, *events.Binder) {
	t.Helper()
	a := test.NewTempApp(t)
	binder := events.NewBinder()

	u, err := BuildUI(a, config.Default().Window, binder, logger.NoOpLogger{})
	require.NoError(t, err)
	return u, binder
}

func TestBuildUI_WidgetTree(t *testing.T) {
	u, _ := buildTestUI(t)

	assert.Equal(t, "Tabbed Document UI", u.Window.Native.Title())
	assert.Equal(t, u.Content, u.Window.Native.Content())

	buttons := u.Toolbar.Buttons()
	require.Len(t, buttons, 4)
	assert.True(t, u.Toolbar.Home.Enabled())
	assert.False(t, u.Toolbar.New.Enabled())
	assert.False(t, u.Toolbar.Open.Enabled())
	assert.True(t, u.Toolbar.CloseAll.Enabled())
	assert.Equal(t, "Close all", u.Toolbar.CloseAll.Text())

	tabs := u.TabsContainer.Tabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, HomeTabTitle, tabs[0].Title())

	assert.Equal(t, StatusText, u.StatusBar.Text())
}

func TestBuildUI_HomeButtonFocused(t *testing.T) {
	u, _ := buildTestUI(t)

	assert.Equal(t, u.Toolbar.Home.Widget, u.Window.Native.Canvas().Focused())
}

func TestBuildUI_StageOrder(t *testing.T) {
	u, _ := buildTestUI(t)

	assert.Equal(t, []string{
		StageWindow, StageToolbar, StageTabs, StageHomeTab, StageStatus, StageLayout,
	}, u.Stages())
}

func TestBuildUI_HandlesAreDistinct(t *testing.T) {
	u, _ := buildTestUI(t)

	seen := map[string]bool{}
	ids := []string{
		u.Window.Handle.String(),
		u.Toolbar.Handle.String(),
		u.TabsContainer.Handle.String(),
		u.TabsContainer.Tabs()[0].Handle.String(),
		u.StatusBar.Handle.String(),
	}
	for _, b := range u.Toolbar.Buttons() {
		ids = append(ids, b.Handle.String())
	}
	for _, id := range ids {
		assert.False(t, seen[id], id)
		seen[id] = true
	}
}

func TestBuildUI_InvalidWindowAborts(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := config.Default().Window
	cfg.Height = 0

	u, err := BuildUI(a, cfg, events.NewBinder(), logger.NoOpLogger{})
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrBuildUI)
	assert.ErrorIs(t, err, components.ErrInvalidSize)
}

func TestRequestClose_DispatchesToWindowHandlers(t *testing.T) {
	u, binder := buildTestUI(t)

	var got []events.Event
	binder.Bind(u.Window.Handle, func(e events.Event) { got = append(got, e) })

	u.RequestClose()

	require.Len(t, got, 1)
	assert.Equal(t, events.WindowClose, got[0].Kind)
	assert.Equal(t, u.Window.Handle, got[0].Source)
}

func TestToolbarClick_LeavesTabsUnchanged(t *testing.T) {
	u, binder := buildTestUI(t)
	before := u.TabsContainer.Tabs()

	for _, b := range u.Toolbar.Buttons() {
		test.Tap(b.Widget)
	}

	assert.Equal(t, before, u.TabsContainer.Tabs())
	assert.Len(t, u.TabsContainer.Widget.Items, 1)
	assert.Zero(t, binder.Len())
}

func TestLayout_ToolbarAboveTabs(t *testing.T) {
	u, _ := buildTestUI(t)
	u.Content.Resize(fyne.NewSize(800, 600))

	tb := u.Toolbar.Frame
	tabs := u.TabsContainer.Widget
	assert.Equal(t, float32(ToolbarHeight), tb.Size().Height)
	assert.Equal(t, tb.Position().Y+tb.Size().Height, tabs.Position().Y)
	assert.Equal(t, tb.Size().Width, tabs.Size().Width)
}
