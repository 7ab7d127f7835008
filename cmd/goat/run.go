package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brocode/goat/internal/config"
	"github.com/brocode/goat/internal/countdown"
	"github.com/brocode/goat/internal/mapping"
	"github.com/brocode/goat/internal/tui"
)

func runRoot(cmd *cobra.Command, _ []string) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	file, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	opts, err := config.Merge(file, config.Flags{
		Seconds:  seconds,
		Title:    title,
		TitleSet: cmd.Flags().Changed("title"),
		Mappings: mappings,
		NoColor:  noColor,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	// Parsed before the interactivity check so bad mappings always fail loudly.
	table, err := mapping.Parse(opts.Mappings)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := cmd.Context()
	if !interactive() {
		os.Exit(sleep(ctx, os.Stdout, opts))
	}

	code, err := runInteractive(ctx, opts, table)
	switch {
	case err == nil:
	case errors.Is(err, tui.ErrInterrupted), errors.Is(err, context.Canceled):
		logrus.Debugf("countdown interrupted: %v", err)
		code = countdown.AbortCode
	default:
		logrus.Fatalf("countdown failed: %v", err)
	}
	os.Exit(code)
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// sleep is the non-interactive fallback: no key handling, just wait.
func sleep(ctx context.Context, w io.Writer, opts config.Options) int {
	fmt.Fprintf(w, "goat - sleeping for %d seconds: '%s'\n", int64(opts.Duration/time.Second), opts.Title)
	select {
	case <-time.After(opts.Duration):
		return countdown.ExpiredCode
	case <-ctx.Done():
		logrus.Debugf("sleep interrupted: %v", ctx.Err())
		return countdown.AbortCode
	}
}

func runInteractive(ctx context.Context, opts config.Options, table *mapping.Table) (int, error) {
	var tuiOpts []tui.Option
	if opts.NoColor {
		tuiOpts = append(tuiOpts, tui.WithNoColor())
	}
	t := tui.Start(tuiOpts...)

	loop := countdown.New(countdown.Config{
		Title:    opts.Title,
		Duration: opts.Duration,
		Table:    table,
	}, t)
	code, runErr := loop.Run(ctx, t)

	if err := t.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close terminal: %w", err)
	}
	return code, runErr
}
