package app

import (
	"time"

	"github.com/bethropolis/flatland/internal/config"
	"github.com/bethropolis/flatland/internal/event"
	"github.com/bethropolis/flatland/internal/logger"
)

// handleActionTriggered applies a matched action to the panel.
func (a *App) handleActionTriggered(e event.Event) bool {
	data, ok := e.Data.(event.ActionTriggeredData)
	if !ok {
		logger.Warnf("App: ActionTriggered with unexpected data type: %T", e.Data)
		return false
	}

	a.mu.Lock()
	applied := a.panel.Apply(data.Action)
	a.lastAction = data.Action
	a.mu.Unlock()

	if !applied {
		logger.Warnf("App: panel ignored action %v", data.Action)
	}
	a.statusBar.SetLastAction(data.Action)
	a.requestRedraw()
	return false // Not consumed
}

// handleKeysCleared reports stuck-key recovery.
func (a *App) handleKeysCleared(e event.Event) bool {
	if data, ok := e.Data.(event.KeysClearedData); ok && data.Count > 0 {
		a.showMessage("Focus lost, released %d held key(s)", data.Count)
	}
	return false
}

func (a *App) handleShortcutsReloaded(e event.Event) bool {
	if data, ok := e.Data.(event.ShortcutsReloadedData); ok {
		a.showMessage("Shortcuts reloaded from %s", data.Source)
	}
	return false
}

func (a *App) handleReloadFailed(e event.Event) bool {
	if data, ok := e.Data.(event.ReloadFailedData); ok {
		a.statusBar.SetTemporaryError("Reload failed, keeping previous shortcuts: %v", data.Err)
		a.scheduleMessageExpiry()
	}
	return false
}

func (a *App) showMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.scheduleMessageExpiry()
}

// scheduleMessageExpiry redraws once the temporary message has timed out.
func (a *App) scheduleMessageExpiry() {
	time.AfterFunc(config.MessageTimeout+50*time.Millisecond, a.requestRedraw)
}
