// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bethropolis/flatland/internal/config"
	"github.com/bethropolis/flatland/internal/dispatch"
	"github.com/bethropolis/flatland/internal/event"
	"github.com/bethropolis/flatland/internal/input"
	"github.com/bethropolis/flatland/internal/logger"
	"github.com/bethropolis/flatland/internal/panel"
	"github.com/bethropolis/flatland/internal/statusbar"
	"github.com/bethropolis/flatland/internal/theme"
	"github.com/bethropolis/flatland/internal/tui"
	"github.com/bethropolis/flatland/internal/watcher"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	processor    *dispatch.Processor
	watcher      *watcher.Watcher // nil when watching is off or failed
	activeTheme  *theme.Theme

	mu         sync.Mutex // Guards panel and lastAction
	panel      *panel.Panel
	lastAction input.Action

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates the terminal and initializes the application.
func NewApp(cfg *config.Config) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// newApp wires every component around an already initialized terminal.
func newApp(cfg *config.Config, tuiManager *tui.TUI) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}

	activeTheme := loadTheme(cfg.Theme.File)
	eventManager := event.NewManager()

	width, height := tuiManager.Size()
	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		statusBar:     statusbar.New(statusbar.ConfigFromTheme(activeTheme, config.MessageTimeout)),
		eventManager:  eventManager,
		activeTheme:   activeTheme,
		panel:         panel.New(width, height, cfg.PanelSteps()),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	// --- Subscribe before anything can publish ---
	eventManager.Subscribe(event.TypeActionTriggered, a.handleActionTriggered)
	eventManager.Subscribe(event.TypeKeysCleared, a.handleKeysCleared)
	eventManager.Subscribe(event.TypeShortcutsReloaded, a.handleShortcutsReloaded)
	eventManager.Subscribe(event.TypeReloadFailed, a.handleReloadFailed)

	a.processor = dispatch.NewProcessor(
		a.loadInitialShortcuts(),
		dispatch.WithMatchPolicy(cfg.MatchPolicy()),
		dispatch.WithPolicy(cfg.DispatchPolicy()),
		dispatch.WithPublisher(eventManager),
	)
	a.statusBar.SetPolicy(fmt.Sprintf("%s/%s", cfg.MatchPolicy(), cfg.DispatchPolicy()))

	if cfg.Shortcuts.Watch {
		a.startWatcher()
	}

	logger.Infof("App: match policy %s, dispatch policy %s, shortcuts '%s'",
		cfg.MatchPolicy(), cfg.DispatchPolicy(), cfg.Shortcuts.File)
	return a, nil
}

func loadTheme(path string) *theme.Theme {
	if path == "" {
		return theme.GetCurrentTheme()
	}
	th, err := theme.LoadThemeFromFile(path)
	if err != nil {
		logger.Warnf("App: %v; using built-in theme", err)
		return theme.GetCurrentTheme()
	}
	theme.SetCurrentTheme(th)
	return th
}

// Run starts the event loop and the drawing loop. It returns when the user
// quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.tuiManager.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.watcher != nil {
		defer a.watcher.Close()
		go func() {
			if err := a.watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Errorf("App: watcher stopped: %v", err)
			}
		}()
	}

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-ctx.Done():
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			return ctx.Err()
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("App: exiting")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop feeds terminal events to handleEvent until the screen is finalized.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		redraw, quit := a.handleEvent(ev)
		if quit {
			a.requestQuit()
			return
		}
		if redraw {
			a.requestRedraw()
		}
	}
}

// handleEvent processes one terminal event and reports whether the screen
// needs redrawing and whether the app should exit.
func (a *App) handleEvent(ev tcell.Event) (redraw, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true, false

	case *tcell.EventFocus:
		if !ev.Focused {
			// Releases for keys held while unfocused will never arrive.
			a.processor.ClearKeys()
			a.statusBar.SetHeld(input.Combo{})
			return true, false
		}

	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false, false
}

// handleKey runs the press and synthetic release of one key through the processor.
func (a *App) handleKey(ev *tcell.EventKey) (redraw, quit bool) {
	if tui.IsQuit(ev) {
		return false, true
	}

	events := tui.KeyEvents(ev)
	if events == nil {
		logger.DebugTagf("input", "Ignoring key without a physical identifier: %s", ev.Name())
		return false, false
	}

	for _, ke := range events {
		a.processor.HandleKey(ke)
		if ke.State == input.Pressed {
			a.statusBar.SetHeld(input.NewCombo(input.ConvertModifiers(ke.Modifiers), a.processor.HeldKeys()...))
		}
	}
	return true, false
}

func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
