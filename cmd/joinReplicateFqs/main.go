package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/natalierpayne/join-replicate-fqs/pkg/replicate"
	"github.com/natalierpayne/join-replicate-fqs/pkg/report"
	"github.com/natalierpayne/join-replicate-fqs/pkg/wechatwork"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var t0 = time.Now()

	opts, err := parseArgs(args)
	if err != nil {
		return fail(stderr, err)
	}
	if opts.Help {
		usage(stdout)
		return 0
	}
	setLogger(stderr, opts.Verbose)

	matcher, err := replicate.NewMatcher(opts.Patterns, opts.Fixed)
	if err != nil {
		return fail(stderr, usageErrorf("%v", err))
	}
	slog.Info("patterns", "patterns", opts.Patterns, "literal", matcher.Literal(), "files", len(opts.Files))

	set, err := replicate.Discover(opts.Files, matcher)
	if err != nil {
		return fail(stderr, err)
	}
	pairs, err := replicate.Pairs(opts.Files, set)
	if err != nil {
		return fail(stderr, err)
	}

	if err := prepareDirs(opts, stdin, stderr); err != nil {
		return fail(stderr, err)
	}

	var joiner = replicate.NewJoiner(replicate.Options{
		Concatenate: opts.Concatenate,
		OutDir:      opts.OutDir,
		Extract:     opts.Extract,
		Dir:         opts.Dir,
	})
	results, err := joiner.Run(pairs)
	if err != nil {
		return fail(stderr, err)
	}

	if opts.Xlsx != "" {
		if err := report.WriteXlsx(opts.Xlsx, results); err != nil {
			return fail(stderr, fmt.Errorf("write %s: %w", opts.Xlsx, err))
		}
	}
	if opts.Chart != "" {
		if err := report.WriteChart(opts.Chart, results); err != nil {
			return fail(stderr, fmt.Errorf("write %s: %w", opts.Chart, err))
		}
	}
	if err := wechatwork.NewNotificationSender(opts.Webhook).SendRunSummary(results); err != nil {
		slog.Warn("notify", "err", err)
	}

	slog.Info("done", "pairs", len(results), "replicates", set.Len(), "elapsed", time.Since(t0))
	return 0
}

func setLogger(w io.Writer, verbose bool) {
	var level = slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// fail reports err and returns the exit status for it.
func fail(stderr io.Writer, err error) int {
	var uerr *UsageError
	if errors.As(err, &uerr) {
		usage(stderr)
		fmt.Fprintf(stderr, "%s: error: %s\n", progName, uerr.Msg)
		return 2
	}
	if errors.Is(err, errDeclined) {
		fmt.Fprintln(stderr, declineMessage)
		return 1
	}
	fmt.Fprintln(stderr, err)
	return 1
}
