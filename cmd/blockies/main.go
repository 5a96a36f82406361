package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nikolasavic/blockies/internal/blockie"
	"github.com/nikolasavic/blockies/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 64
)

// usageError marks errors caused by bad invocation.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// app holds per-invocation state shared by the commands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// flags
	configPath string
	preset     string
	color      string
	bgColor    string
	spotColor  string
	testMode   bool
	random     bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blockies [seed]",
		Short: "blockies - identicons for the terminal",
		Long: `blockies derives a small mirrored pixel-art identicon and its palette from a
seed string and prints it with ANSI truecolor half blocks.

Presets:
  v1  8x8, xorshift stream, square mirror (Ethereum blockies)
  v2  10x10, SHA-256 stream, diamond mirror`,
		Args:              a.rootArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runRender,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: $"+config.EnvConfig+" or user config dir)")
	pf.StringVarP(&a.preset, "preset", "p", "", "preset: v1 or v2 (default from config, then v1)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	f := root.Flags()
	f.StringVar(&a.color, "color", "", "main color override as h,s,l fractions")
	f.StringVar(&a.bgColor, "bgcolor", "", "background color override as h,s,l fractions")
	f.StringVar(&a.spotColor, "spotcolor", "", "spot color override as h,s,l fractions")
	f.BoolVar(&a.testMode, "test", false, "render every vanity seed")
	f.BoolVar(&a.random, "random", false, "render a random seed")

	root.AddCommand(a.paletteCmd(), a.versionCmd())
	return root
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		// No config or self-test needed to print a version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprintf(a.stdout, "blockies %s (commit: %s, built: %s)\n", version, commit, date)
			return nil
		},
	}
}

func (a *app) rootArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) > 1:
		return usagef("expected at most one seed, got %d", len(args))
	case a.testMode && (len(args) > 0 || a.random):
		return usagef("--test takes no seed")
	case a.random && len(args) > 0:
		return usagef("--random takes no seed")
	case !a.testMode && !a.random && len(args) == 0:
		return usagef("usage: blockies <seed> (or --test, --random)")
	}
	return nil
}

// setup loads config, builds the logger and runs the conformance check.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, method, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := a.newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("config resolved",
		zap.String("path", path),
		zap.Stringer("method", method),
		zap.String("preset", cfg.Preset),
	)

	if err := blockie.SelfTest(); err != nil {
		a.logger.Error("prng self-test failed", zap.Error(err))
		return err
	}
	return nil
}

func (a *app) newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	if lc.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(a.stderr), level)
	return zap.New(core), nil
}

// resolvePreset applies the --preset flag over the config.
func (a *app) resolvePreset() (blockie.Preset, error) {
	if a.preset == "" {
		return a.cfg.PresetValue(), nil
	}
	p, err := blockie.ParsePreset(a.preset)
	if err != nil {
		return "", &usageError{err: err}
	}
	return p, nil
}
