package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"strings-diff/internal/data"
	"strings-diff/internal/diff"
	"strings-diff/internal/logging"
	"strings-diff/internal/report"
	"strings-diff/internal/resources"
	"strings-diff/internal/util"
)

const (
	ExitOk    = 0
	ExitDiff  = 1
	ExitError = 2

	maxWatchDebounce = time.Minute
)

// Options describes a single comparison run
type Options struct {
	BasePath    string
	TargetPaths []string
	// Tags is the tag filter expression, see resources.ParseTagFilter
	Tags       string
	FailOnDiff bool
	Color      bool
}

// Outcome summarizes a finished comparison run
type Outcome struct {
	Targets         int
	TargetsWithDiff int
}

func (o Outcome) HasDiff() bool {
	return o.TargetsWithDiff > 0
}

// ExitCode maps the outcome of a comparison to the process exit code
func ExitCode(outcome Outcome, failOnDiff bool) int {
	if failOnDiff && outcome.HasDiff() {
		return ExitDiff
	}
	return ExitOk
}

// RunComparison compares every target against the base and writes the report to stdout.
// Duplicate key warnings are written to stderr. The first file that cannot be read
// or parsed aborts the run.
func RunComparison(options Options, stdout io.Writer, stderr io.Writer) (Outcome, error) {
	outcome := Outcome{}
	if options.BasePath == "" {
		return outcome, errors.New("no base file given")
	}
	if len(options.TargetPaths) == 0 {
		return outcome, errors.New("no target files given")
	}

	filter := resources.ParseTagFilter(options.Tags)
	printer := report.NewPrinter(stdout, stderr, options.Color)
	logging.Debug("Comparing %d target(s) against %s using tags %s", len(options.TargetPaths), options.BasePath, filter.String())

	base, err := resources.CollectKeys(options.BasePath, filter)
	if err != nil {
		return outcome, err
	}
	printer.PrintDuplicates(report.Base, base)

	for _, targetPath := range options.TargetPaths {
		target, err := resources.CollectKeys(targetPath, filter)
		if err != nil {
			return outcome, err
		}
		printer.PrintDuplicates(report.Target, target)

		result := compare(base, target)
		printer.PrintComparison(base, target, filter, result)

		outcome.Targets++
		if result.HasDiff() {
			outcome.TargetsWithDiff++
		}
	}

	printer.PrintSummary(outcome.Targets, outcome.TargetsWithDiff)
	return outcome, nil
}

func compare(base *data.ResourceFile, target *data.ResourceFile) diff.Result {
	result := diff.CompareFiles(base, target)
	logging.Debug("%s: %d missing, %d extra", target.Path, result.Missing.Len(), result.Extra.Len())
	return result
}

// RunWatch runs the comparison once and then again every time the base or any target
// file changes, until ctx is cancelled or the process receives SIGINT or SIGTERM.
// Errors of individual runs are reported to stderr and do not stop watching.
func RunWatch(ctx context.Context, options Options, debounce time.Duration, stdout io.Writer, stderr io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runOnce := func() {
		_, err := RunComparison(options, stdout, stderr)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		}
	}

	paths := append([]string{options.BasePath}, options.TargetPaths...)
	watcher, err := util.NewFileWatcher(paths, util.Coerce(debounce, 0, maxWatchDebounce))
	if err != nil {
		return err
	}

	runOnce()

	var g run.Group
	{
		watchCtx, watchCancel := context.WithCancel(ctx)
		g.Add(func() error {
			logging.Info("Watching %d file(s) for changes...", len(watcher.Paths))
			return watcher.Watch(watchCtx, func(path string) {
				logging.Info("Change detected in %s", path)
				runOnce()
			})
		}, func(err error) {
			watchCancel()
		})
	}
	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}

	err = g.Run()
	var signalErr run.SignalError
	if errors.As(err, &signalErr) {
		logging.Info("Received %v, stopping.", signalErr.Signal)
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
