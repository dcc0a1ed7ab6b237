// Package main is the entry point for the modedit editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/dshills/modedit/internal/app"
	"github.com/dshills/modedit/internal/config"
	"github.com/dshills/modedit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	app.Options

	logFile     string
	logLevel    string
	showVersion bool
	printConfig bool
}

// errExit stops run with the given status after flag handling.
type errExit int

func (e errExit) Error() string { return fmt.Sprintf("exit %d", int(e)) }

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		var code errExit
		if errors.As(err, &code) {
			return int(code)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "modedit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if opts.printConfig {
		cfg, err := config.Load(config.Options{Dir: opts.ConfigDir, Environ: os.Environ()})
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if err := cfg.Settings.WriteTOML(stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(stderr, "Error: standard output is not a terminal")
		return 1
	}

	logger, closeLog, err := openLog(opts.logFile, opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	opts.Logger = logger

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	opts.Screen = term

	// Create application before taking over the terminal so configuration
	// errors print normally.
	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if err := term.Init(); err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			_ = term.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	err = application.Run()
	term.Shutdown()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}
	fs := flag.NewFlagSet("modedit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigDir, "config", "", "Configuration directory")
	fs.StringVar(&opts.ConfigDir, "c", "", "Configuration directory (shorthand)")
	fs.BoolVar(&opts.ReadOnly, "readonly", false, "Open the file read-only")
	fs.BoolVar(&opts.ReadOnly, "R", false, "Open the file read-only (shorthand)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective settings as TOML and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "modedit - a small modal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: modedit [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  modedit                     Open with an empty buffer\n")
		fmt.Fprintf(stderr, "  modedit notes.txt           Open a file\n")
		fmt.Fprintf(stderr, "  modedit -R notes.txt        Open a file read-only\n")
		fmt.Fprintf(stderr, "  modedit --print-config      Show the settings in effect\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errExit(0)
		}
		return nil, errExit(2)
	}

	if _, ok := app.ParseLogLevel(opts.logLevel); !ok {
		return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		fs.Usage()
		return nil, errors.New("at most one file may be given")
	}
	return opts, nil
}

// openLog returns a logger writing to path, or a discarding logger when
// path is empty.
func openLog(path, level string) (*app.Logger, func(), error) {
	if path == "" {
		return app.NullLogger, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	lvl, _ := app.ParseLogLevel(level)
	cfg := app.DefaultLoggerConfig()
	cfg.Level = lvl
	cfg.Output = f
	return app.NewLogger(cfg), func() { _ = f.Close() }, nil
}
