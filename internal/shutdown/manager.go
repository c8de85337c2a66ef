package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"fyne.io/fyne/v2"

	"tabbed-document-ui/internal/logger"
)

// Stopper is whatever ends the dispatch loop; Application.Exit satisfies it.
type Stopper interface {
	Exit() bool
}

// Manager turns SIGINT/SIGTERM into the same stop the window-close event
// performs. The stop runs on the GUI goroutine via fyne.Do.
type Manager struct {
	stopper   Stopper
	logger    logger.Logger
	signals   chan os.Signal
	runOnMain func(func())
	once      sync.Once
	done      chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewManager(log logger.Logger, stopper Stopper) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		stopper:   stopper,
		logger:    log,
		signals:   make(chan os.Signal, 1),
		runOnMain: fyne.Do,
		done:      make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (m *Manager) Listen() {
	signal.Notify(m.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-m.signals:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.ctx.Done():
		}
	}()
}

// Shutdown requests a stop once; later calls do nothing.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.runOnMain(func() {
			stopped := m.stopper.Exit()
			m.logger.Info("ShutdownManager", "stop requested", map[string]interface{}{
				"stopped": stopped,
			})
		})
		close(m.done)
	})
}

// Close stops listening for signals.
func (m *Manager) Close() {
	signal.Stop(m.signals)
	m.cancel()
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
