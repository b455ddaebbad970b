package shortcuts

import (
	"errors"
	"strings"
)

var (
	// ErrRead is the class of failures reading the document from disk.
	ErrRead = errors.New("cannot read shortcut document")

	// ErrStructure is the class of failures in the document's content.
	ErrStructure = errors.New("invalid shortcut document")
)

// Reasons carried by a ParseError.
var (
	ErrEmptyDocument  = errors.New("document is empty")
	ErrSyntax         = errors.New("syntax error")
	ErrMissingSection = errors.New("missing section")
	ErrMissingAction  = errors.New("missing action")
	ErrUnknownToken   = errors.New("token is neither a modifier nor a key")
)

// ParseError describes why a document did not produce a table.
// errors.Is matches both ErrStructure and the specific reason.
type ParseError struct {
	Path    string // empty when parsing from memory
	Section string // e.g. "KeyboardShortcuts.Movement"
	Action  string // e.g. "Forward"
	Token   string // offending token for ErrUnknownToken
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Section != "" {
		b.WriteString(e.Section)
		if e.Action != "" {
			b.WriteString(".")
			b.WriteString(e.Action)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	if e.Token != "" {
		b.WriteString(": ")
		b.WriteString(e.Token)
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrStructure, e.Err}
}
