package app

import (
	"github.com/bethropolis/flatland/internal/logger"
	"github.com/bethropolis/flatland/internal/shortcuts"
	"github.com/bethropolis/flatland/internal/watcher"
)

// loadInitialShortcuts writes the default document on first run and loads
// the configured one. A document that cannot be loaded is reported and the
// built-in table used instead, so the app never runs without shortcuts.
func (a *App) loadInitialShortcuts() *shortcuts.Table {
	path := a.cfg.Shortcuts.File

	created, err := shortcuts.EnsureFile(path)
	if err != nil {
		logger.Warnf("App: %v", err)
	} else if created {
		logger.Infof("App: wrote default shortcuts to '%s'", path)
		a.statusBar.SetTemporaryMessage("Wrote default shortcuts to %s", path)
	}

	table, err := shortcuts.LoadFile(path)
	if err != nil {
		logger.Errorf("App: cannot use shortcuts from '%s', falling back to built-in defaults: %v", path, err)
		a.statusBar.SetTemporaryError("Using default shortcuts: %v", err)
		return shortcuts.Default()
	}
	logger.Infof("App: loaded shortcuts from '%s'", path)
	return table
}

// reloadShortcuts swaps in the document at path. On failure the current
// table stays active; the outcome is published as an event.
func (a *App) reloadShortcuts(path string) {
	_ = a.processor.Reload(path, func() (*shortcuts.Table, error) {
		return shortcuts.LoadFile(path)
	})
	a.requestRedraw()
}

func (a *App) startWatcher() {
	w, err := watcher.New(a.cfg.Shortcuts.File, a.cfg.ReloadDelay(), a.reloadShortcuts)
	if err != nil {
		logger.Warnf("App: live reload disabled: %v", err)
		return
	}
	a.watcher = w
}
