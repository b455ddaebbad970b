// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/flatland/internal/input"
	"github.com/bethropolis/flatland/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Style for temporary messages
	StyleError     tcell.Style // Style for temporary errors
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme, timeout time.Duration) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		StyleError:     th.GetStyle(theme.StyleStatusBarError),
		MessageTimeout: timeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	// Content fields (updated externally)
	held       input.Combo
	lastAction input.Action
	policy     string // e.g. "superset/first"

	// Temporary message state
	tempMessage     string
	tempIsError     bool
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetHeld updates the live combo shown in the status bar.
func (sb *StatusBar) SetHeld(live input.Combo) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.held = live
}

// SetLastAction updates the most recently triggered action.
func (sb *StatusBar) SetLastAction(a input.Action) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.lastAction = a
}

// SetPolicy updates the displayed match/dispatch policy.
func (sb *StatusBar) SetPolicy(policy string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.policy = policy
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setTemp(false, format, args...)
}

// SetTemporaryError displays an error for a configured duration.
func (sb *StatusBar) SetTemporaryError(format string, args ...interface{}) {
	sb.setTemp(true, format, args...)
}

func (sb *StatusBar) setTemp(isError bool, format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempIsError = isError
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempIsError = false
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text.
// Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	held := "-"
	if !sb.held.IsEmpty() {
		held = sb.held.String()
	}
	last := "-"
	if sb.lastAction != input.ActionUnknown {
		last = sb.lastAction.String()
	}
	text := fmt.Sprintf("Held: %s -- Last: %s", held, last)
	if sb.policy != "" {
		text += " -- " + sb.policy
	}
	return text + " -- Esc quits"
}

// Text returns what Draw would show now, and whether it is a temporary message.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	text, _, temp := sb.current()
	return text, temp
}

// current expires an old temporary message and picks text and style.
// Caller holds the write lock.
func (sb *StatusBar) current() (string, tcell.Style, bool) {
	active := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempIsError = false
		sb.tempMessageTime = time.Time{}
	}
	if active {
		if sb.tempIsError {
			return sb.tempMessage, sb.config.StyleError, true
		}
		return sb.tempMessage, sb.config.StyleMessage, true
	}
	return sb.getDefaultDisplayText(), sb.config.StyleDefault, false
}

// Draw renders the status bar onto the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock()
	text, style, _ := sb.current()
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
