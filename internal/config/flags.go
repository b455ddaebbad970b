// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/flatland/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath *string
	ShortcutsFile  *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	Match          *string
	Dispatch       *string
	Watch          *bool
	// Logger filters
	EnableTags   *string
	DisableTags  *string
	EnablePkgs   *string
	DisablePkgs  *string
	EnableFiles  *string
	DisableFiles *string
	DebugLog     *bool
	// One-shot commands
	CopyDefault  *bool
	PrintDefault *string
}

// DefineFlags sets up the command-line flags on fs and associates them with
// the Flags struct fields. A nil fs means flag.CommandLine.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	f.set = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName))
	f.ShortcutsFile = fs.String("shortcuts", "", "Path to the shortcut document (.toml, .yaml or .yml) - Overrides config file")
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.Match = fs.String("match", "", "Combo matching: superset or exact - Overrides config file")
	f.Dispatch = fs.String("dispatch", "", "Actions per key event: first or all - Overrides config file")
	f.Watch = fs.Bool("watch", true, "Reload shortcuts when the file changes - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.CopyDefault = fs.Bool("copy-default", false, "Copy the default shortcut document to the clipboard and exit")
	f.PrintDefault = fs.String("print-default", "", "Print the default shortcut document in the given format (toml, yaml) and exit")
}

// ParseFlags defines the flags on fs and parses args into the Flags struct.
// It returns the remaining non-flag arguments.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	verbose := f.DebugLog != nil && *f.DebugLog

	// Visit only processes flags that were actually set
	f.set.Visit(func(fl *flag.Flag) {
		if verbose {
			logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		}
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "shortcuts":
			if *f.ShortcutsFile != "" {
				cfg.Shortcuts.File = *f.ShortcutsFile
			}
		case "match":
			if *f.Match != "" {
				cfg.Shortcuts.Match = *f.Match
			}
		case "dispatch":
			if *f.Dispatch != "" {
				cfg.Shortcuts.Dispatch = *f.Dispatch
			}
		case "watch":
			cfg.Shortcuts.Watch = *f.Watch
		case "log-tags":
			if tags := splitCommaList(*f.EnableTags); tags != nil {
				cfg.Logger.EnabledTags = tags
			}
		case "log-disable-tags":
			if tags := splitCommaList(*f.DisableTags); tags != nil {
				cfg.Logger.DisabledTags = tags
			}
		case "log-packages":
			if pkgs := splitCommaList(*f.EnablePkgs); pkgs != nil {
				cfg.Logger.EnabledPackages = pkgs
			}
		case "log-disable-packages":
			if pkgs := splitCommaList(*f.DisablePkgs); pkgs != nil {
				cfg.Logger.DisabledPackages = pkgs
			}
		case "log-files":
			if files := splitCommaList(*f.EnableFiles); files != nil {
				cfg.Logger.EnabledFiles = files
			}
		case "log-disable-files":
			if files := splitCommaList(*f.DisableFiles); files != nil {
				cfg.Logger.DisabledFiles = files
			}
		}
	})
}

// splitCommaList splits a comma-separated list, dropping blanks.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
