// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// scriptdesk is a terminal script assistant for support agents: it
// shows a library of canned responses grouped into sections, fills in
// the agent's name, the customer's name and the contact intent as they
// are typed into the call details sidebar, and copies finished scripts
// to the clipboard.
//
// The library comes from --scripts (YAML, JSONC or Markdown) or the
// config file; without either, a built-in library is used. A library
// file is watched and reloaded on change unless --no-watch is given.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/scriptdesk/cmd/scriptdesk/cli"
	"github.com/bureau-foundation/scriptdesk/lib/config"
	"github.com/bureau-foundation/scriptdesk/lib/scriptdoc"
	"github.com/bureau-foundation/scriptdesk/lib/scriptui"
	"github.com/bureau-foundation/scriptdesk/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath  string
	scriptsPath string
	agentName   string
	noWatch     bool
	check       bool
	logOutput   string
}

func run() error {
	var flags options

	flagSet := pflag.NewFlagSet("scriptdesk", pflag.ContinueOnError)
	flagSet.StringVar(&flags.configPath, "config", "", "path to config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&flags.scriptsPath, "scripts", "", "path to script library (.yaml, .json, .jsonc or .md)")
	flagSet.StringVar(&flags.agentName, "agent", "", "prefill the agent name field")
	flagSet.BoolVar(&flags.noWatch, "no-watch", false, "do not reload the library when the file changes")
	flagSet.BoolVar(&flags.check, "check", false, "validate config and library, print a summary and exit")
	flagSet.StringVar(&flags.logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works alongside
	// otherwise invalid flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("scriptdesk")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0]).
			WithHint("Pass the library with --scripts.")
	}

	logger := cli.NewCommandLogger()
	if flags.check {
		return runCheck(flags, logger)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	library, err := loadLibrary(cfg.Scripts)
	if err != nil {
		return err
	}
	logger.Info("script library loaded",
		"source", librarySource(cfg.Scripts),
		"sections", len(library.Sections),
	)

	return runViewer(cfg, library, flags.logOutput)
}

// runCheck validates the config and the library, logging each problem
// on its own line. Any problem yields an ExitError so main exits
// non-zero without repeating them.
func runCheck(flags options, logger *slog.Logger) error {
	cfg, err := readConfig(flags)
	if err != nil {
		return err
	}

	failed := false
	if err := cfg.Validate(); err != nil {
		for _, problem := range splitProblems(err) {
			logger.Error("configuration problem", "error", problem)
		}
		failed = true
	}

	source := librarySource(cfg.Scripts)
	library, err := loadLibrary(cfg.Scripts)
	if err != nil {
		for _, problem := range splitProblems(err) {
			logger.Error("script library problem", "source", source, "error", problem)
		}
		failed = true
	} else {
		logger.Info("script library loaded", "source", source, "sections", len(library.Sections))
	}

	if failed {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// splitProblems unwraps err down to the first joined error and returns
// its members, or err itself when nothing was joined.
func splitProblems(err error) []error {
	for current := err; current != nil; current = errors.Unwrap(current) {
		joined, ok := current.(interface{ Unwrap() []error })
		if !ok {
			continue
		}
		var problems []error
		for _, member := range joined.Unwrap() {
			problems = append(problems, splitProblems(member)...)
		}
		return problems
	}
	return []error{err}
}

// readConfig reads the config file (from --config or the environment)
// and applies flag overrides.
func readConfig(flags options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("config file not found: %w", err).
				WithHint("Check --config or $" + config.EnvironmentVariable + ".")
		}
		return nil, cli.Validation("cannot load config: %w", err)
	}

	if flags.scriptsPath != "" {
		cfg.Scripts = flags.scriptsPath
	}
	if flags.agentName != "" {
		cfg.AgentName = flags.agentName
	}
	if flags.noWatch {
		cfg.Watch = false
	}
	return cfg, nil
}

// loadConfig reads the config and validates the result.
func loadConfig(flags options) (*config.Config, error) {
	cfg, err := readConfig(flags)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration:\n%w", err).
			WithHint("Durations are written like \"300ms\" or \"2s\".")
	}
	return cfg, nil
}

// loadLibrary parses the configured library, or returns the built-in
// one when no path is set.
func loadLibrary(path string) (*scriptdoc.Library, error) {
	if path == "" {
		return scriptdoc.Default(), nil
	}
	library, err := scriptdoc.Load(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, cli.NotFound("script library not found: %w", err)
		case errors.Is(err, scriptdoc.ErrUnsupportedFormat):
			return nil, cli.Validation("cannot load %s: %w", path, err).
				WithHint("Script libraries must end in .yaml, .yml, .json, .jsonc or .md.")
		}
		return nil, cli.Validation("cannot load script library: %w", err).
			WithHint("Run with --check to validate the library without starting the viewer.")
	}
	return library, nil
}

func librarySource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// runViewer starts the TUI. Background logging (library reloads,
// clipboard fallbacks) is routed through a TUILogHandler that shows
// warnings and errors in the status bar instead of writing to stderr,
// which would corrupt the alt-screen display. An optional file logger
// captures all records.
func runViewer(cfg *config.Config, library *scriptdoc.Library, logOutput string) error {
	tuiHandler := scriptui.NewTUILogHandler(slog.LevelWarn)

	var backgroundLogger *slog.Logger
	if logOutput != "" {
		fileHandler, fileCloser, err := openFileLogHandler(logOutput)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", logOutput, err)
		}
		defer fileCloser()
		backgroundLogger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		backgroundLogger = slog.New(tuiHandler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads <-chan *scriptdoc.Library
	if cfg.Watch && cfg.Scripts != "" {
		watched, err := scriptdoc.Watch(ctx, cfg.Scripts, backgroundLogger)
		if err != nil {
			return cli.Internal("cannot watch %s: %w", cfg.Scripts, err).
				WithHint("Pass --no-watch to run without live reload.")
		}
		reloads = watched
	}

	model, err := scriptui.NewModel(scriptui.Options{
		Library:         library,
		Labels:          cfg.Labels(),
		AgentName:       cfg.AgentName,
		SearchDebounce:  cfg.SearchDebounce,
		TooltipDuration: cfg.TooltipDuration,
		SwipeThreshold:  cfg.SwipeThreshold,
		CellWidth:       cfg.CellWidth,
		Reloads:         reloads,
		Logger:          backgroundLogger,
	})
	if err != nil {
		return cli.Validation("cannot build the script view: %w", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `scriptdesk: terminal script assistant for support calls.

Shows a library of response scripts by section. Names typed into the
call details sidebar (Ctrl-B) are filled into every script; blanks
marked in a script must be filled before it can be copied.

Usage:
  scriptdesk [flags]

Examples:
  # Browse the built-in scripts
  scriptdesk

  # Use a team library and prefill your name
  scriptdesk --scripts ~/scripts/support.yaml --agent Sam

  # Validate a library before sharing it
  scriptdesk --scripts support.md --check

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
