// internal/tui/drawing.go
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/flatland/internal/input"
	"github.com/bethropolis/flatland/internal/logger"
	"github.com/bethropolis/flatland/internal/panel"
	"github.com/bethropolis/flatland/internal/shortcuts"
	"github.com/bethropolis/flatland/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// View is the state one frame shows.
type View struct {
	Table  *shortcuts.Table
	Panel  *panel.Panel
	Active input.Action // Last triggered action, highlighted
	Source string       // Where the table was loaded from
}

// actionColumn is the width reserved for action names.
const actionColumn = 18

// DrawText draws text at (x, y) using grapheme cluster widths, clipped to
// maxWidth cells. It returns the number of cells used.
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if used+clusterWidth > maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x+used, y, runes[0], runes[1:], style)
		}
		used += clusterWidth
	}
	return used
}

// DrawView draws the panel transform and every binding of the table, leaving
// the last row to the status bar.
func DrawView(tuiManager *TUI, view View, activeTheme *theme.Theme) {
	if activeTheme == nil {
		logger.Warnf("DrawView called with nil theme, using package default.")
		activeTheme = theme.GetCurrentTheme()
	}

	screen := tuiManager.GetScreen()
	width, height := tuiManager.Size()
	viewHeight := height - 1 // Status bar
	if viewHeight <= 0 || width <= 0 {
		return
	}

	y := 0
	line := func(x int, text string, style tcell.Style) int {
		if y >= viewHeight {
			return 0
		}
		return DrawText(screen, x, y, width-x, text, style)
	}

	title := "flatland"
	if view.Source != "" {
		title = fmt.Sprintf("flatland  %s", filepath.Base(view.Source))
	}
	line(0, title, activeTheme.GetStyle(theme.StyleTitle))
	y++
	if view.Panel != nil {
		line(0, view.Panel.String(), activeTheme.GetStyle(theme.StylePanel))
		y++
	}

	if view.Table == nil {
		y++
		line(0, "No shortcuts loaded", activeTheme.GetStyle(theme.StyleComboUnbound))
		return
	}

	current := input.Category(-1)
	for _, b := range view.Table.Bindings() {
		if c := b.Action.Category(); c != current {
			current = c
			y++
			line(0, c.String(), activeTheme.GetStyle(theme.StyleSection))
			y++
		}

		nameStyle := activeTheme.GetStyle(theme.StyleAction)
		comboStyle := activeTheme.GetStyle(theme.StyleCombo)
		if b.Combo.IsEmpty() {
			comboStyle = activeTheme.GetStyle(theme.StyleComboUnbound)
		}
		if b.Action == view.Active {
			nameStyle = activeTheme.GetStyle(theme.StyleActive)
		}

		line(2, b.Action.Name(), nameStyle)
		if width > actionColumn {
			line(actionColumn, b.Combo.String(), comboStyle)
		}
		y++
	}
}
