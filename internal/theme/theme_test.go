package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetStyleFallbacks(t *testing.T) {
	th := &FlatlandDark

	if got := th.GetStyle(StyleComboUnbound); got != th.Styles[StyleComboUnbound] {
		t.Error("exact style not returned")
	}
	if got := th.GetStyle("Combo.Conflict"); got != th.Styles[StyleCombo] {
		t.Error("dotted name should fall back to its base style")
	}
	if got := th.GetStyle("Nope"); got != th.Styles[StyleDefault] {
		t.Error("unknown name should fall back to Default")
	}

	empty := &Theme{Name: "empty"}
	if got := empty.GetStyle("Anything"); got != tcell.StyleDefault {
		t.Error("theme without Default should use tcell.StyleDefault")
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.toml")
	doc := `
is_dark = false

[styles.Default]
fg = "#112233"

[styles.Combo]
fg = "red"
bold = true

[styles.Broken]
fg = "not-a-colour"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile() error = %v", err)
	}
	if th.Name != "solar" {
		t.Errorf("Name = %q, want file name", th.Name)
	}

	fg, _, _ := th.GetStyle(StyleDefault).Decompose()
	if fg != tcell.NewHexColor(0x112233) {
		t.Errorf("Default fg = %v", fg)
	}
	fg, _, attrs := th.GetStyle(StyleCombo).Decompose()
	if fg != tcell.ColorRed || attrs&tcell.AttrBold == 0 {
		t.Errorf("Combo = %v bold=%v", fg, attrs&tcell.AttrBold != 0)
	}
	if _, ok := th.Styles["Broken"]; ok {
		t.Error("style with a bad colour should be skipped")
	}
	if th.GetStyle(StyleStatusBar) != FlatlandDark.Styles[StyleStatusBar] {
		t.Error("styles missing from the file should come from the built-in theme")
	}
}

func TestLoadThemeFromFileErrors(t *testing.T) {
	if _, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[styles.Default]\nfg = \"#12\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadThemeFromFile(path); err == nil {
		t.Error("bad Default style should fail")
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{" Reset ", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"blue", tcell.ColorBlue, false},
		{"#fff", tcell.ColorDefault, true},
		{"chartreuse-ish", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseColorString(%q) = %v, %v", tt.in, got, err)
		}
	}
}
