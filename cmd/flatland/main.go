// cmd/flatland/main.go
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/flatland/internal/app"
	"github.com/bethropolis/flatland/internal/config"
	"github.com/bethropolis/flatland/internal/logger"
	"github.com/bethropolis/flatland/internal/shortcuts"
)

var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	if _, err := flags.ParseFlags(flag.CommandLine, os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}
	handled, err := runOneShot(flags)
	if err != nil {
		stlog.Fatalf("%v", err)
	}
	if handled {
		return
	}

	logger.SetDebugFilter(*flags.DebugLog)

	// Config loading logs before the log file is known; keep those lines.
	var boot bytes.Buffer
	logger.Init(logger.NewConfig(), &boot)

	cfg, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	logOut, closeLog, err := openLog(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer closeLog()
	_, _ = boot.WriteTo(logOut)
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s", config.AppName, version)
	logger.Debugf("Log file: %s", cfg.Logger.LogFilePath)
	if cfgErr != nil {
		logger.Warnf("Config: %v; continuing with defaults", cfgErr)
	}

	// --- Create and Run App ---
	flatlandApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closeLog()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := flatlandApp.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// runOneShot handles the flags that print or copy the default document and
// reports whether one of them ran.
func runOneShot(flags *config.Flags) (bool, error) {
	if *flags.CopyDefault {
		if err := clipboard.WriteAll(shortcuts.DefaultDocument); err != nil {
			return true, fmt.Errorf("failed to copy default shortcuts: %w", err)
		}
		fmt.Println("Default shortcuts copied to the clipboard.")
		return true, nil
	}

	if name := *flags.PrintDefault; name != "" {
		format := shortcuts.FormatForPath("shortcuts." + name)
		data, err := shortcuts.DefaultDocumentFor(format)
		if err != nil {
			return true, err
		}
		_, err = os.Stdout.Write(data)
		return true, err
	}
	return false, nil
}

// openLog opens the log destination; "-" is stderr.
func openLog(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
