package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/flatland/internal/input"
	"github.com/bethropolis/flatland/internal/panel"
	"github.com/bethropolis/flatland/internal/shortcuts"
	"github.com/bethropolis/flatland/internal/theme"
	"github.com/gdamore/tcell/v2"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantKey  input.Key
		wantMods input.Modifier
		wantOK   bool
	}{
		{"plain letter", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), input.KeyW, input.ModNone, true},
		{"upper case adds shift", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), input.KeyW, input.ModShift, true},
		{"alt letter", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModAlt), input.KeyE, input.ModAlt, true},
		{"ctrl letter from control code", tcell.NewEventKey(tcell.KeyRune, 0x17, tcell.ModNone), input.KeyW, input.ModCtrl, true},
		{"ctrl alt letter", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl|tcell.ModAlt), input.KeyQ, input.ModCtrl | input.ModAlt, true},
		{"tab stays tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.KeyTab, input.ModNone, true},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), input.KeyTab, input.ModShift, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyReturn, input.ModNone, true},
		{"shift arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), input.KeyUp, input.ModShift, true},
		{"meta is mod", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModMeta), input.KeyLeft, input.ModMod, true},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), input.KeyF5, input.ModNone, true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), input.Key7, input.ModNone, true},
		{"shifted digit", tcell.NewEventKey(tcell.KeyRune, '&', tcell.ModNone), input.Key7, input.ModShift, true},
		{"punctuation", tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone), input.KeySlash, input.ModNone, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeySpace, input.ModNone, true},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModNone), input.KeySpace, input.ModCtrl, true},
		{"non-latin rune", tcell.NewEventKey(tcell.KeyRune, 'ß', tcell.ModNone), input.KeyNone, input.ModNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, mods, ok := TranslateKey(tt.ev)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Fatalf("TranslateKey() = %v, %v, want %v, %v", key, ok, tt.wantKey, tt.wantOK)
			}
			if got := input.ConvertModifiers(Modifiers(mods)); got != tt.wantMods {
				t.Errorf("modifiers = %v, want %v", got, tt.wantMods)
			}
		})
	}
}

func TestKeyEventsPairPressAndRelease(t *testing.T) {
	evs := KeyEvents(tcell.NewEventKey(tcell.KeyRune, 0x17, tcell.ModNone))
	if len(evs) != 2 {
		t.Fatalf("KeyEvents() returned %d events, want 2", len(evs))
	}
	if evs[0].State != input.Pressed || evs[1].State != input.Released {
		t.Errorf("states = %v, %v", evs[0].State, evs[1].State)
	}
	for _, ev := range evs {
		if ev.Key != input.KeyW || !ev.Modifiers.Ctrl() {
			t.Errorf("event = %+v", ev)
		}
	}

	if evs := KeyEvents(tcell.NewEventKey(tcell.KeyRune, 'ß', tcell.ModNone)); evs != nil {
		t.Errorf("untranslatable key produced %v", evs)
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
	if !IsQuit(tcell.NewEventKey(tcell.KeyRune, 0x03, tcell.ModNone)) {
		t.Error("Ctrl+C should quit")
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyRune, 0x17, tcell.ModNone)) {
		t.Error("Ctrl+W should not quit")
	}
}

func newSimTUI(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	tm, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen() error = %v", err)
	}
	t.Cleanup(tm.Close)
	sim.SetSize(w, h)
	return tm, sim
}

func rows(sim tcell.SimulationScreen) []string {
	cells, w, h := sim.GetContents()
	out := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			r := cells[y*w+x].Runes
			if len(r) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(string(r))
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func TestDrawText(t *testing.T) {
	tm, sim := newSimTUI(t, 10, 2)
	if n := DrawText(tm.GetScreen(), 0, 0, 6, "日本語ok", tcell.StyleDefault); n != 6 {
		t.Errorf("DrawText() used %d cells, want 6", n)
	}
	tm.Show()
	if got := rows(sim)[0]; !strings.HasPrefix(got, "日") || strings.Contains(got, "ok") {
		t.Errorf("row = %q", got)
	}
}

func TestDrawView(t *testing.T) {
	tm, sim := newSimTUI(t, 60, 40)
	view := View{
		Table:  shortcuts.Default(),
		Panel:  panel.New(100, 80, panel.DefaultSteps()),
		Active: input.ActionMoveForward,
		Source: "/home/u/.config/flatland/shortcuts.toml",
	}
	DrawView(tm, view, &theme.FlatlandDark)
	tm.Show()

	out := strings.Join(rows(sim), "\n")
	for _, want := range []string{"flatland  shortcuts.toml", "Movement", "Rotation", "Resize", "Forward", "Ctrl+W", "Shift+Up"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestDrawViewWithoutTable(t *testing.T) {
	tm, sim := newSimTUI(t, 40, 6)
	DrawView(tm, View{}, nil)
	tm.Show()
	if out := strings.Join(rows(sim), "\n"); !strings.Contains(out, "No shortcuts loaded") {
		t.Errorf("view = %q", out)
	}
}
