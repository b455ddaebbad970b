// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/flatland/internal/logger" // For logging missing styles
	"github.com/gdamore/tcell/v2"
)

// Style names used by the terminal front-end.
const (
	StyleDefault          = "Default"
	StyleTitle            = "Title"
	StyleSection          = "Section"
	StyleAction           = "Action"
	StyleCombo            = "Combo"
	StyleComboUnbound     = "Combo.Unbound"
	StyleActive           = "Active"
	StylePanel            = "Panel"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarError   = "StatusBarError"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the base name (the part
// before the first dot), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// FlatlandDark is the built-in theme.
var FlatlandDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38) // Status bar
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	red := tcell.NewHexColor(0xe06c75)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	FlatlandDark = Theme{
		Name:   "Flatland Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:      baseStyle,
			StyleTitle:        baseStyle.Foreground(blue).Bold(true),
			StyleSection:      baseStyle.Foreground(cyan).Bold(true),
			StyleAction:       baseStyle,
			StyleCombo:        baseStyle.Foreground(yellow),
			StyleComboUnbound: baseStyle.Foreground(muted).Italic(true),
			StyleActive:       baseStyle.Foreground(green).Bold(true).Reverse(true),
			StylePanel:        baseStyle.Foreground(green),

			StyleStatusBar:        tcell.StyleDefault.Background(background).Foreground(foreground),
			StyleStatusBarMessage: tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),
			StyleStatusBarError:   tcell.StyleDefault.Background(background).Foreground(red).Bold(true),
		},
	}

	CurrentTheme = &FlatlandDark
}

// CurrentTheme is the theme the front-end draws with.
var CurrentTheme *Theme

func GetCurrentTheme() *Theme {
	if CurrentTheme == nil {
		CurrentTheme = &FlatlandDark
	}
	return CurrentTheme
}

func SetCurrentTheme(theme *Theme) {
	if theme != nil {
		CurrentTheme = theme
		logger.Infof("Theme switched to: %s", theme.Name)
	}
}
