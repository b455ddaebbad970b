package config

import "time"

// Base application details
const AppName = "flatland"
const DefaultConfigFileName = "config.toml"       // Application settings
const DefaultShortcutsFileName = "shortcuts.toml" // Shortcut document
const DefaultLogFileName = "flatland.log"

// Shortcut dispatch
const DefaultMatchPolicy = "superset"
const DefaultDispatchPolicy = "first"
const DefaultReloadDelay = 150 * time.Millisecond

// Panel steps
const DefaultMoveStep = 0.05
const DefaultRotateStep = 15.0
const DefaultResizeStep = 32

// Status Bar
const MessageTimeout = 4 * time.Second
