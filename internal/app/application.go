package app

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"tabbed-document-ui/internal/config"
	"tabbed-document-ui/internal/gui"
	"tabbed-document-ui/internal/gui/events"
	"tabbed-document-ui/internal/gui/fonts"
	"tabbed-document-ui/internal/logger"
)

const (
	AppName = "Tabbed Document UI"
	AppID   = "com.example.tabbeddocumentui"
)

var (
	ErrInitialize         = errors.New("failed to initialize GUI runtime")
	ErrAlreadyInitialized = errors.New("GUI runtime already initialized")
)

// Runtime creates the process-wide GUI runtime. It is called exactly once,
// from Initialize.
type Runtime func() fyne.App

func DefaultRuntime() fyne.App {
	return fyneapp.NewWithID(AppID)
}

// Application is the shell: it owns the GUI runtime, the widget tree and the
// handler bindings, and walks them through the Lifecycle states.
type Application struct {
	cfg       config.Config
	runtime   Runtime
	fyneApp   fyne.App
	theme     *fonts.FamilyTheme
	ui        *gui.UI
	binder    *events.Binder
	lifecycle *Lifecycle
	logger    logger.Logger
}

func NewApplication(cfg config.Config, log logger.Logger, runtime Runtime) *Application {
	if runtime == nil {
		runtime = DefaultRuntime
	}
	return &Application{
		cfg:       cfg,
		runtime:   runtime,
		binder:    events.NewBinder(),
		lifecycle: NewLifecycle(log),
		logger:    log,
	}
}

// Initialize starts the GUI runtime and installs the global default font.
// It must be called once, before BuildUI.
func (a *Application) Initialize() error {
	if a.lifecycle.State() != Uninitialized {
		return ErrAlreadyInitialized
	}

	fyneApp := a.runtime()
	if fyneApp == nil {
		return fmt.Errorf("%w: runtime returned no app", ErrInitialize)
	}

	theme, err := fonts.SetGlobalFamily(fyneApp, a.cfg.Font.Family, a.cfg.Font.Path)
	if err != nil {
		return fmt.Errorf("%w: set default font: %w", ErrInitialize, err)
	}

	a.fyneApp = fyneApp
	a.theme = theme
	if err := a.lifecycle.Advance(Initialized); err != nil {
		return err
	}

	a.logger.Info("Application", "runtime initialized", map[string]interface{}{
		"font": theme.Family(),
	})
	return nil
}

// BuildUI assembles the widget tree and binds the window-close handler.
func (a *Application) BuildUI() (*gui.UI, error) {
	if state := a.lifecycle.State(); state != Initialized {
		return nil, fmt.Errorf("%w: build UI in state %s", ErrInvalidTransition, state)
	}

	ui, err := gui.BuildUI(a.fyneApp, a.cfg.Window, a.binder, a.logger)
	if err != nil {
		return nil, err
	}

	a.ui = ui
	a.binder.Bind(ui.Window.Handle, a.windowEvents(ui))

	if err := a.lifecycle.Advance(UIBuilt); err != nil {
		return nil, err
	}
	return ui, nil
}

// windowEvents returns the handler bound to ui's window. ui is passed in so
// the handler reaches the same tree that registered it.
func (a *Application) windowEvents(ui *gui.UI) events.Handler {
	return func(evt events.Event) {
		if evt.Kind != events.WindowClose || evt.Source != ui.Window.Handle {
			return
		}
		a.logger.Info("Application", "window close event", nil)
		a.Exit()
	}
}

// Run shows the window and blocks in the dispatch loop until Exit.
func (a *Application) Run() error {
	if err := a.lifecycle.Advance(Running); err != nil {
		return err
	}

	a.ui.Window.Native.Show()
	a.logger.Info("Application", "dispatch loop started", nil)
	a.fyneApp.Run()
	a.logger.Info("Application", "dispatch loop finished", nil)
	return nil
}

// Exit stops the dispatch loop. Only the first call while running has an
// effect; it reports whether this call stopped the loop.
func (a *Application) Exit() bool {
	if err := a.lifecycle.Advance(Stopping); err != nil {
		return false
	}

	a.logger.Info("Application", "stopping dispatch loop", nil)
	a.fyneApp.Quit()
	return true
}

// Destroy unbinds every handler. Calling it again is a no-op. It returns
// the number of bindings released.
func (a *Application) Destroy() int {
	if a.lifecycle.State() == Destroyed {
		return 0
	}

	released := a.binder.UnbindAll()
	if err := a.lifecycle.Advance(Destroyed); err != nil {
		a.logger.Warning("Application", "destroy before UI was built", map[string]interface{}{
			"state": a.lifecycle.State().String(),
		})
	}

	a.logger.Info("Application", "handlers unbound", map[string]interface{}{
		"released": released,
	})
	return released
}

func (a *Application) State() State {
	return a.lifecycle.State()
}

func (a *Application) UI() *gui.UI {
	return a.ui
}

func (a *Application) Bindings() int {
	return a.binder.Len()
}
