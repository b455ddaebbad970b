// Package dispatch turns key events into actions using the active shortcut table.
package dispatch

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bethropolis/flatland/internal/event"
	"github.com/bethropolis/flatland/internal/input"
	"github.com/bethropolis/flatland/internal/logger"
	"github.com/bethropolis/flatland/internal/shortcuts"
)

// MatchPolicy decides when a live combo satisfies a configured one.
type MatchPolicy int

const (
	// MatchSuperset fires when everything configured is held; extra keys are allowed.
	MatchSuperset MatchPolicy = iota
	// MatchExact fires only when nothing beyond the configured combo is held.
	MatchExact
)

func (m MatchPolicy) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "superset"
}

// ParseMatchPolicy accepts "superset" or "exact".
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(s) {
	case "", "superset":
		return MatchSuperset, nil
	case "exact":
		return MatchExact, nil
	}
	return MatchSuperset, fmt.Errorf("unknown match policy '%s'", s)
}

// Policy decides how many matches one event may trigger.
type Policy int

const (
	FirstMatch Policy = iota // Stop at the first match in table order
	AllMatches               // Trigger every matching action
)

func (p Policy) String() string {
	if p == AllMatches {
		return "all"
	}
	return "first"
}

// ParsePolicy accepts "first" or "all".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "first":
		return FirstMatch, nil
	case "all":
		return AllMatches, nil
	}
	return FirstMatch, fmt.Errorf("unknown dispatch policy '%s'", s)
}

// Publisher receives the processor's notifications. *event.Manager satisfies it.
type Publisher interface {
	Dispatch(eventType event.Type, data interface{}) bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithMatchPolicy sets the match policy.
func WithMatchPolicy(m MatchPolicy) Option {
	return func(p *Processor) { p.match = m }
}

// WithPolicy sets the dispatch policy.
func WithPolicy(policy Policy) Option {
	return func(p *Processor) { p.policy = policy }
}

// WithPublisher sets where triggered actions and reload notices go.
func WithPublisher(pub Publisher) Option {
	return func(p *Processor) { p.events = pub }
}

// Processor owns the held-key state of one input context and matches it
// against the active table on every key event.
//
// HandleKey and ClearKeys must be called from a single goroutine. The table
// may be swapped from any goroutine; readers always see a complete table.
type Processor struct {
	keys   *input.KeyState
	table  atomic.Pointer[shortcuts.Table]
	match  MatchPolicy
	policy Policy
	events Publisher
}

// NewProcessor creates a processor using table. A nil table matches nothing
// until SetTable is called.
func NewProcessor(table *shortcuts.Table, opts ...Option) *Processor {
	p := &Processor{keys: input.NewKeyState()}
	for _, opt := range opts {
		opt(p)
	}
	if table != nil {
		p.table.Store(table)
	}
	return p
}

// HandleKey updates the held keys, rebuilds the live combo and returns the
// actions it triggered, in table order.
func (p *Processor) HandleKey(ev input.KeyEvent) []input.Action {
	if ev.Key != input.KeyNone {
		switch ev.State {
		case input.Pressed:
			p.keys.Press(ev.Key)
		case input.Released:
			p.keys.Release(ev.Key)
		}
	}

	live := input.NewCombo(input.ConvertModifiers(ev.Modifiers), p.keys.Keys()...)
	matches := p.Match(live)
	if len(matches) == 0 {
		return nil
	}

	actions := make([]input.Action, 0, len(matches))
	for _, b := range matches {
		logger.DebugTagf("dispatch", "%v %v: live %v matched %v", ev.Key, ev.State, live, b.Action)
		actions = append(actions, b.Action)
		p.publish(event.TypeActionTriggered, event.ActionTriggeredData{Action: b.Action, Combo: b.Combo, Live: live})
	}
	return actions
}

// Match tests live against every binding of the active table without
// touching held-key state. Unbound (empty) combos never match.
func (p *Processor) Match(live input.Combo) []shortcuts.Binding {
	table := p.table.Load()
	if table == nil {
		return nil
	}

	var matches []shortcuts.Binding
	for _, b := range table.Bindings() {
		if b.Combo.IsEmpty() || !p.satisfied(b.Combo, live) {
			continue
		}
		matches = append(matches, b)
		if p.policy == FirstMatch {
			break
		}
	}
	return matches
}

func (p *Processor) satisfied(configured, live input.Combo) bool {
	if p.match == MatchExact {
		return configured.ExactlyMatches(live)
	}
	return configured.SatisfiedBy(live)
}

// ClearKeys drops every held key, for when releases will never arrive
// (focus loss, window blur). It returns how many keys were dropped.
func (p *Processor) ClearKeys() int {
	n := p.keys.Len()
	p.keys.Clear()
	if n > 0 {
		logger.DebugTagf("dispatch", "Cleared %d held key(s)", n)
	}
	p.publish(event.TypeKeysCleared, event.KeysClearedData{Count: n})
	return n
}

// HeldKeys returns the currently held keys in press order.
func (p *Processor) HeldKeys() []input.Key {
	return p.keys.Keys()
}

// Table returns the active table.
func (p *Processor) Table() *shortcuts.Table {
	return p.table.Load()
}

// SetTable publishes a complete table. Nil is ignored.
func (p *Processor) SetTable(t *shortcuts.Table) {
	if t == nil {
		logger.Warnf("Dispatch: refusing to install a nil shortcut table")
		return
	}
	p.table.Store(t)
}

// Reload builds a new table with load and swaps it in only on success.
// On failure the previous table stays active and the error is returned.
func (p *Processor) Reload(source string, load func() (*shortcuts.Table, error)) error {
	t, err := load()
	if err == nil && t == nil {
		err = fmt.Errorf("loader for '%s' returned no table", source)
	}
	if err != nil {
		logger.WarnTagf("reload", "Keeping previous shortcuts, reload of '%s' failed: %v", source, err)
		p.publish(event.TypeReloadFailed, event.ReloadFailedData{Source: source, Err: err})
		return err
	}

	p.table.Store(t)
	logger.InfoTagf("reload", "Shortcuts reloaded from '%s'", source)
	p.publish(event.TypeShortcutsReloaded, event.ShortcutsReloadedData{Source: source})
	return nil
}

func (p *Processor) publish(t event.Type, data interface{}) {
	if p.events != nil {
		p.events.Dispatch(t, data)
	}
}
