package shortcuts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bethropolis/flatland/internal/input"
)

// document renders a TOML shortcut document from the default table,
// leaving out the named section and/or action ("Movement", "Movement.Up").
func document(skipSection, skipAction string) string {
	var b strings.Builder
	table := Default()
	for _, c := range input.Categories {
		if c.String() == skipSection {
			continue
		}
		fmt.Fprintf(&b, "[%s.%s]\n", RootSection, c)
		for _, a := range input.ActionsIn(c) {
			if a.String() == skipAction {
				continue
			}
			quoted := make([]string, 0)
			for _, tok := range table.Combo(a).Tokens() {
				quoted = append(quoted, fmt.Sprintf("%q", tok))
			}
			fmt.Fprintf(&b, "%s = [%s]\n", a.Name(), strings.Join(quoted, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func TestDefaultTable(t *testing.T) {
	table := Default()
	want := input.NewCombo(input.ModCtrl, input.KeyW)
	got := table.Movement.Forward
	if !reflect.DeepEqual(got.Tokens(), want.Tokens()) {
		t.Errorf("Movement.Forward = %v, want %v", got, want)
	}
	for _, b := range table.Bindings() {
		if b.Combo.IsEmpty() {
			t.Errorf("default binding for %v is empty", b.Action)
		}
	}
}

func TestParseReflectsTokens(t *testing.T) {
	doc := `
[KeyboardShortcuts.Movement]
Up = ["Mod", "Up"]
Down = ["Mod", "Down"]
Left = ["Mod", "Left"]
Right = ["Mod", "Right"]
Forward = ["Ctrl", "W"]
Backward = ["Ctrl", "Shift", "S", "LShift"]

[KeyboardShortcuts.Rotation]
Up = ["Alt", "Key8"]
Down = ["Alt", "Key2"]
Left = ["Alt", "Key4"]
Right = ["Alt", "Key6"]
Clockwise = ["Alt", "Ctrl", "E"]
CounterClockwise = ["Q"]

[KeyboardShortcuts.Resize]
Up = ["F1"]
Down = ["F2"]
Left = []
Right = ["Shift", "Right"]
`
	table, err := Parse([]byte(doc), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		action input.Action
		mods   input.Modifier
		keys   []input.Key
	}{
		{input.ActionMoveUp, input.ModMod, []input.Key{input.KeyUp}},
		{input.ActionMoveForward, input.ModCtrl, []input.Key{input.KeyW}},
		{input.ActionMoveBackward, input.ModCtrl | input.ModShift, []input.Key{input.KeyS, input.KeyLShift}},
		{input.ActionRotateClockwise, input.ModAlt | input.ModCtrl, []input.Key{input.KeyE}},
		{input.ActionRotateCounterClockwise, input.ModNone, []input.Key{input.KeyQ}},
		{input.ActionResizeLeft, input.ModNone, []input.Key{}},
		{input.ActionResizeRight, input.ModShift, []input.Key{input.KeyRight}},
	}

	for _, tt := range tests {
		c := table.Combo(tt.action)
		if c.Modifiers() != tt.mods {
			t.Errorf("%v modifiers = %v, want %v", tt.action, c.Modifiers(), tt.mods)
		}
		if !reflect.DeepEqual(c.Keys(), tt.keys) {
			t.Errorf("%v keys = %v, want %v", tt.action, c.Keys(), tt.keys)
		}
	}
}

func TestParseMissingAction(t *testing.T) {
	for _, a := range input.Actions() {
		table, err := Parse([]byte(document("", a.String())), FormatTOML)
		if table != nil {
			t.Errorf("without %v: got a table, want none", a)
		}
		if !errors.Is(err, ErrMissingAction) || !errors.Is(err, ErrStructure) {
			t.Errorf("without %v: error = %v, want missing action", a, err)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Action != a.Name() {
			t.Errorf("without %v: ParseError = %+v", a, pe)
		}
	}
}

func TestParseMissingSection(t *testing.T) {
	for _, c := range input.Categories {
		table, err := Parse([]byte(document(c.String(), "")), FormatTOML)
		if table != nil || !errors.Is(err, ErrMissingSection) {
			t.Errorf("without %v: table = %v, error = %v", c, table, err)
		}
	}

	table, err := Parse([]byte("[Other]\nx = 1\n"), FormatTOML)
	var pe *ParseError
	if table != nil || !errors.As(err, &pe) || pe.Section != RootSection {
		t.Errorf("without root: table = %v, error = %v", table, err)
	}
}

func TestParseUnknownToken(t *testing.T) {
	doc := strings.Replace(document("", ""), `Forward = ["Ctrl", "W"]`, `Forward = ["Ctlr", "W"]`, 1)
	table, err := Parse([]byte(doc), FormatTOML)
	if table != nil {
		t.Fatal("got a table despite an unknown token")
	}
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("error = %v, want unknown token", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Token != "Ctlr" || pe.Action != "Forward" || pe.Section != "KeyboardShortcuts.Movement" {
		t.Errorf("ParseError = %+v", pe)
	}
}

func TestParseCaseSensitive(t *testing.T) {
	if _, err := ParseCombo([]string{"ctrl", "W"}); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("lower-case modifier accepted: %v", err)
	}
	if _, err := ParseCombo([]string{"Ctrl", "w"}); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("lower-case key accepted: %v", err)
	}
}

func TestParseEmptyAndMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", ErrEmptyDocument},
		{"blank", "  \n\t\n", ErrEmptyDocument},
		{"syntax", "[KeyboardShortcuts.Movement\nUp = [", ErrSyntax},
		{"wrong type", "[KeyboardShortcuts.Movement]\nUp = 3\n", ErrSyntax},
	}

	for _, tt := range tests {
		table, err := Parse([]byte(tt.doc), FormatTOML)
		if table != nil || !errors.Is(err, tt.want) || !errors.Is(err, ErrStructure) {
			t.Errorf("%s: table = %v, error = %v, want %v", tt.name, table, err, tt.want)
		}
		if errors.Is(err, ErrRead) {
			t.Errorf("%s: structural failure reported as read failure", tt.name)
		}
	}
}

func TestParseRootSectionIsCaseSensitive(t *testing.T) {
	tomlLower := strings.ReplaceAll(DefaultDocument, "[KeyboardShortcuts.", "[keyboardshortcuts.")
	yamlDoc, err := DefaultDocumentFor(FormatYAML)
	if err != nil {
		t.Fatalf("DefaultDocumentFor() error = %v", err)
	}
	yamlLower := strings.Replace(string(yamlDoc), "KeyboardShortcuts:", "keyboardshortcuts:", 1)

	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{"toml", tomlLower, FormatTOML},
		{"yaml", yamlLower, FormatYAML},
	}
	for _, tt := range tests {
		table, err := Parse([]byte(tt.doc), tt.format)
		var pe *ParseError
		if table != nil || !errors.Is(err, ErrMissingSection) || !errors.As(err, &pe) || pe.Section != RootSection {
			t.Errorf("%s: table = %v, error = %v, want missing %s", tt.name, table, err, RootSection)
		}
	}
}

func TestParseIgnoresUnknownEntries(t *testing.T) {
	doc := document("", "") + "[KeyboardShortcuts.Zoom]\nIn = [\"Ctrl\", \"Equals\"]\n"
	doc = strings.Replace(doc, "[KeyboardShortcuts.Resize]\n", "[KeyboardShortcuts.Resize]\nDiagonal = [\"F9\"]\n", 1)
	if _, err := Parse([]byte(doc), FormatTOML); err != nil {
		t.Errorf("unknown entries should only warn, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
KeyboardShortcuts:
  Movement:
    Up: [Ctrl, E]
    Down: [Ctrl, Q]
    Left: [Ctrl, A]
    Right: [Ctrl, D]
    Forward: [Ctrl, W]
    Backward: [Ctrl, S]
  Rotation:
    Up: [Alt, W]
    Down: [Alt, S]
    Left: [Alt, A]
    Right: [Alt, D]
    Clockwise: [Alt, E]
    CounterClockwise: [Alt, Q]
  Resize:
    Up: [Shift, Up]
    Down: [Shift, Down]
    Left: [Shift, Left]
    Right: [Shift, Right]
`
	table, err := Parse([]byte(doc), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(yaml) error = %v", err)
	}
	if !reflect.DeepEqual(table.Bindings(), Default().Bindings()) {
		t.Error("YAML document should match the default table")
	}

	_, err = Parse([]byte("KeyboardShortcuts:\n  Movement:\n    Up: [Ctrl, E]\n"), FormatYAML)
	if !errors.Is(err, ErrMissingAction) {
		t.Errorf("incomplete YAML: error = %v, want missing action", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		data, err := Encode(Default(), format)
		if err != nil {
			t.Fatalf("Encode(%v) error = %v", format, err)
		}
		table, err := Parse(data, format)
		if err != nil {
			t.Fatalf("Parse(Encode(%v)) error = %v\n%s", format, err, data)
		}
		if !reflect.DeepEqual(table.Bindings(), Default().Bindings()) {
			t.Errorf("%v round trip changed the table", format)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, ErrRead) || errors.Is(err, ErrStructure) {
		t.Errorf("missing file: error = %v, want read failure only", err)
	}

	path := filepath.Join(dir, "shortcuts.toml")
	if err := os.WriteFile(path, []byte(document("Rotation", "")), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(path)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Path != path {
		t.Errorf("broken file: error = %v, want ParseError naming the path", err)
	}
}

func TestEnsureFile(t *testing.T) {
	for _, name := range []string{"shortcuts.toml", "shortcuts.yaml"} {
		path := filepath.Join(t.TempDir(), "flatland", name)

		created, err := EnsureFile(path)
		if err != nil || !created {
			t.Fatalf("EnsureFile(%s) = %v, %v", name, created, err)
		}
		created, err = EnsureFile(path)
		if err != nil || created {
			t.Errorf("second EnsureFile(%s) = %v, %v; want no write", name, created, err)
		}

		table, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error = %v", name, err)
		}
		if !reflect.DeepEqual(table.Bindings(), Default().Bindings()) {
			t.Errorf("%s does not hold the default table", name)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.YML":  FormatYAML,
		"a.yaml": FormatYAML,
		"a.kdl":  FormatTOML,
		"a":      FormatTOML,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %v, want %v", path, got, want)
		}
	}
}
