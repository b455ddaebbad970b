package app

import (
	"github.com/bethropolis/flatland/internal/logger"
	"github.com/bethropolis/flatland/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "draw: screen %dx%d", width, height)

	a.mu.Lock()
	view := tui.View{
		Table:  a.processor.Table(),
		Panel:  a.panel,
		Active: a.lastAction,
		Source: a.cfg.Shortcuts.File,
	}
	a.tuiManager.Clear()
	tui.DrawView(a.tuiManager, view, a.activeTheme)
	a.mu.Unlock()

	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}
