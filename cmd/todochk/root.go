package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/phyten/todochk/internal/config"
	"github.com/phyten/todochk/internal/engine"
	"github.com/phyten/todochk/internal/log"
	"github.com/phyten/todochk/internal/output"
	"github.com/phyten/todochk/internal/progress"
	"github.com/phyten/todochk/internal/termcolor"
)

// app holds everything the command touches outside the process, so tests
// can swap it out.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	stdoutFile *os.File // used only for colour detection
	getwd      func() (string, error)
	env        map[string]string
	home       string
	now        func() time.Time
	progress   bool
}

func defaultApp() app {
	return app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stdoutFile: os.Stdout,
		getwd:      os.Getwd,
		env:        termcolor.EnvMap(os.Environ()),
		now:        time.Now,
		progress:   progress.ShouldShowProgress(),
	}
}

func newRootCmd(a app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todochk",
		Short:         "Check for TODOs in your source code",
		Long:          "todochk scans the current directory recursively and prints every TODO comment with the line above it.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), a)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	return cmd
}

func run(ctx context.Context, a app) error {
	start := a.now()
	pwd, err := a.getwd()
	if err != nil {
		return errors.Errorf("resolve working directory: %w", err)
	}

	settings, path, err := config.Resolve(pwd, a.home)
	if err != nil {
		warn := log.New(a.stderr, "")
		warn.Warn().Err(err).Str("path", path).Msg("ignoring config file, using defaults")
		settings = config.DefaultSettings()
	}
	ctx = log.WithContext(ctx, a.stderr, settings.LogLevel)
	mode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		return err
	}
	color := termcolor.Enabled(mode, a.stdoutFile, a.env)

	fmt.Fprintf(a.stdout, "Running todochk v%s\n", version)
	spinner, err := progress.StartSpinner(a.stderr, fmt.Sprintf("Collecting todos from directory %s", pwd), a.progress)
	if err != nil {
		return errors.Errorf("start spinner: %w", err)
	}
	opts := settings.EngineOptions(pwd)
	opts.Observer = progress.Join(spinner, progress.ObserverFunc(func(s progress.Snapshot) {
		zerolog.Ctx(ctx).Trace().Str("path", s.Path).Int("files", s.Files).Int("todos", s.Findings).Msg("scanned")
	}))
	res, err := engine.Run(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout)
	if err := output.WriteText(a.stdout, res.Findings, settings.TextOptions(color)); err != nil {
		return errors.Errorf("write report: %w", err)
	}
	_, err = fmt.Fprintf(a.stdout, " in %d seconds\n", int(a.now().Sub(start).Seconds()))
	return err
}
