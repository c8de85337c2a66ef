package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"tabbed-document-ui/internal/config"
	"tabbed-document-ui/internal/gui/components"
	"tabbed-document-ui/internal/gui/events"
	"tabbed-document-ui/internal/gui/handle"
	"tabbed-document-ui/internal/gui/layout"
	"tabbed-document-ui/internal/logger"
)

const (
	LayoutPadding = 10
	ToolbarHeight = 32
	HomeTabTitle  = "Home"
	StatusText    = "Status"
)

var ErrBuildUI = errors.New("failed to build UI")

// Build stages, in the order BuildUI runs them.
const (
	StageWindow  = "window"
	StageToolbar = "toolbar"
	StageTabs    = "tabs"
	StageHomeTab = "home-tab"
	StageStatus  = "status"
	StageLayout  = "layout"
)

// UI is the assembled widget tree. One value is shared between the shell
// and the handlers it binds; handlers receive it explicitly at bind time.
type UI struct {
	Window        *components.Window
	Toolbar       *components.Toolbar
	TabsContainer *components.TabsContainer
	StatusBar     *components.StatusBar
	Content       fyne.CanvasObject

	binder *events.Binder
	logger logger.Logger
	stages []string
}

// BuildUI constructs window, toolbar, tabs container, Home tab, status bar
// and layout, in that order. The first failing builder aborts the build.
func BuildUI(app fyne.App, cfg config.WindowConfig, binder *events.Binder, log logger.Logger) (*UI, error) {
	u := &UI{binder: binder, logger: log}

	var err error
	u.Window, err = components.NewWindow(app, components.WindowOptions{
		Title: cfg.Title,
		Size:  fyne.NewSize(float32(cfg.Width), float32(cfg.Height)),
	})
	if err != nil {
		return nil, u.fail(StageWindow, err)
	}
	u.stage(StageWindow)

	u.Toolbar, err = components.NewToolbar(components.ToolbarOptions{
		Parent:  u.Window.Handle,
		OnClick: u.onButtonClick,
	})
	if err != nil {
		return nil, u.fail(StageToolbar, err)
	}
	u.stage(StageToolbar)

	u.TabsContainer, err = components.NewTabsContainer(components.TabsContainerOptions{
		Parent: u.Window.Handle,
	})
	if err != nil {
		return nil, u.fail(StageTabs, err)
	}
	u.stage(StageTabs)

	if _, err = components.NewTab(components.TabOptions{
		Parent: u.TabsContainer,
		Text:   HomeTabTitle,
	}); err != nil {
		return nil, u.fail(StageHomeTab, err)
	}
	u.stage(StageHomeTab)

	u.StatusBar, err = components.NewStatusBar(components.StatusBarOptions{
		Parent: u.Window.Handle,
		Text:   StatusText,
	})
	if err != nil {
		return nil, u.fail(StageStatus, err)
	}
	u.stage(StageStatus)

	column := container.New(
		layout.NewColumnLayout(LayoutPadding, ToolbarHeight, layout.Flex),
		u.Toolbar.Frame,
		u.TabsContainer.Widget,
	)
	u.Content = container.NewBorder(nil, u.StatusBar.GetContainer(), nil, nil, column)
	u.Window.Native.SetContent(u.Content)
	u.Window.Native.Canvas().Focus(u.Toolbar.Home.Widget)
	u.Window.Native.SetCloseIntercept(u.RequestClose)
	u.stage(StageLayout)

	u.logger.Info("UI", "widget tree built", map[string]interface{}{
		"title":  cfg.Title,
		"width":  cfg.Width,
		"height": cfg.Height,
		"tabs":   u.TabsContainer.Len(),
	})
	return u, nil
}

// Stages returns the build stages completed so far, in order.
func (u *UI) Stages() []string {
	out := make([]string, len(u.stages))
	copy(out, u.stages)
	return out
}

// RequestClose delivers a window-close event to the handlers bound to the
// window. It is installed as the window's close intercept.
func (u *UI) RequestClose() {
	n := u.binder.Dispatch(events.Event{Kind: events.WindowClose, Source: u.Window.Handle})
	u.logger.Debug("UI", "window close requested", map[string]interface{}{
		"handlers": n,
	})
}

// Toolbar actions are placeholders: clicks are dispatched, but the shell
// binds nothing to the buttons.
func (u *UI) onButtonClick(source handle.Handle) {
	n := u.binder.Dispatch(events.Event{Kind: events.ButtonClick, Source: source})
	u.logger.Debug("UI", "toolbar button clicked", map[string]interface{}{
		"button":   source.String(),
		"handlers": n,
	})
}

func (u *UI) stage(name string) {
	u.stages = append(u.stages, name)
	u.logger.Debug("UI", "built", map[string]interface{}{"stage": name})
}

func (u *UI) fail(stage string, err error) error {
	u.logger.Error("UI", err, map[string]interface{}{"stage": stage})
	return fmt.Errorf("%w: %s: %w", ErrBuildUI, stage, err)
}
