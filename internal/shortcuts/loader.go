package shortcuts

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/flatland/internal/input"
	"github.com/bethropolis/flatland/internal/logger"
	"go.yaml.in/yaml/v3"
)

// RootSection is the top-level section every shortcut document must have.
const RootSection = "KeyboardShortcuts"

// Format selects the document syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatForPath picks the syntax from the file extension. Anything that is
// not .yaml or .yml is read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// rawDocument is the decoded, not yet validated document:
// section -> action -> tokens.
type rawDocument struct {
	KeyboardShortcuts map[string]map[string][]string `toml:"KeyboardShortcuts" yaml:"KeyboardShortcuts"`
}

// LoadFile reads and parses the document at path. Read failures wrap ErrRead,
// content failures are *ParseError values wrapping ErrStructure.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	table, err := parse(data, FormatForPath(path), path)
	if err != nil {
		return nil, err
	}
	logger.DebugTagf("shortcuts", "Loaded %d shortcuts from '%s'", len(input.Actions()), path)
	return table, nil
}

// Parse builds a table from an in-memory document. Either every action
// resolves or no table is returned.
func Parse(data []byte, format Format) (*Table, error) {
	return parse(data, format, "")
}

func parse(data []byte, format Format, path string) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Path: path, Err: ErrEmptyDocument}
	}

	doc, err := decode(data, format, path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}

	root := doc.KeyboardShortcuts
	if root == nil {
		return nil, &ParseError{Path: path, Section: RootSection, Err: ErrMissingSection}
	}
	warnUnknownEntries(root, path)

	// Built privately and only returned once complete.
	var table Table
	for _, category := range input.Categories {
		section := RootSection + "." + category.String()
		entries, ok := root[category.String()]
		if !ok {
			return nil, &ParseError{Path: path, Section: section, Err: ErrMissingSection}
		}
		for _, action := range input.ActionsIn(category) {
			tokens, ok := entries[action.Name()]
			if !ok {
				return nil, &ParseError{Path: path, Section: section, Action: action.Name(), Err: ErrMissingAction}
			}
			combo, err := ParseCombo(tokens)
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					pe.Path, pe.Section, pe.Action = path, section, action.Name()
				}
				return nil, err
			}
			*table.slot(action) = combo
		}
	}
	return &table, nil
}

// ParseCombo turns one action's token list into a combo. A token that is
// neither a modifier name nor a key identifier fails the whole combo.
func ParseCombo(tokens []string) (input.Combo, error) {
	mods := input.ModNone
	keys := make([]input.Key, 0, len(tokens))
	for _, tok := range tokens {
		if m, ok := input.ModifierFromName(tok); ok {
			mods = mods.With(m)
			continue
		}
		k, ok := input.ParseKey(tok)
		if !ok {
			return input.Combo{}, &ParseError{Token: tok, Err: ErrUnknownToken}
		}
		keys = append(keys, k)
	}
	return input.NewCombo(mods, keys...), nil
}

func decode(data []byte, format Format, path string) (*rawDocument, error) {
	var doc rawDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		metadata, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, err
		}
		// toml falls back to case-insensitive field names; section names are not.
		if doc.KeyboardShortcuts != nil && !metadata.IsDefined(RootSection) {
			logger.Warnf("Shortcut document '%s': root section must be spelled %q", path, RootSection)
			doc.KeyboardShortcuts = nil
		}
		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			logger.Warnf("Shortcut document '%s': unrecognized keys: %v", path, undecoded)
		}
	}
	return &doc, nil
}

// warnUnknownEntries logs sections and actions the loader will ignore.
func warnUnknownEntries(root map[string]map[string][]string, path string) {
	known := make(map[string]map[string]bool, len(input.Categories))
	for _, c := range input.Categories {
		names := make(map[string]bool)
		for _, a := range input.ActionsIn(c) {
			names[a.Name()] = true
		}
		known[c.String()] = names
	}

	for _, section := range sortedKeys(root) {
		names, ok := known[section]
		if !ok {
			logger.Warnf("Shortcut document '%s': ignoring unknown section '%s.%s'", path, RootSection, section)
			continue
		}
		for _, name := range sortedKeys(root[section]) {
			if !names[name] {
				logger.Warnf("Shortcut document '%s': ignoring unknown action '%s.%s'", path, section, name)
			}
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode writes table as a document in the given format.
func Encode(table *Table, format Format) ([]byte, error) {
	doc := rawDocument{KeyboardShortcuts: make(map[string]map[string][]string)}
	for _, b := range table.Bindings() {
		section := b.Action.Category().String()
		if doc.KeyboardShortcuts[section] == nil {
			doc.KeyboardShortcuts[section] = make(map[string][]string)
		}
		doc.KeyboardShortcuts[section][b.Action.Name()] = b.Combo.Tokens()
	}

	if format == FormatYAML {
		return yaml.Marshal(&doc)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode shortcuts: %w", err)
	}
	return buf.Bytes(), nil
}
