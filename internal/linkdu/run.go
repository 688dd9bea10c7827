package linkdu

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(dirs, links) on each tick until ctx is
// done.
//
//nolint:varnamelen // c is idiomatic for counters
func startProgressReporter(ctx context.Context, c *counters, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				dirs, links := c.snapshot()
				hook(dirs, links)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// summarize scans the finished ledger once and merges it with the shared
// counters. Every entry counts as one distinct file; an entry whose
// remaining link count still exceeds 1 has links outside the tree.
func summarize(c *counters, ledger *Ledger) *Totals {
	dirs, links := c.snapshot()

	totals := &Totals{Dirs: int(dirs), FileLinks: int(links)}

	ledger.ForEach(func(e Entry) {
		totals.Files++
		totals.FileSpace += e.Size

		if e.Links > 1 {
			totals.OutsideFiles++
			totals.OutsideSpace += e.Size
		}
	})

	return totals
}

// Run walks the directory tree at opt.Path and returns the grand totals.
// Per-directory statistics are delivered to rep as each directory finishes;
// in the recursive mode that is children before parents.
//
// A failure to list opt.Path itself is fatal and returned; failures deeper
// in the tree are written to opt.Diag and swallowed, so partial results
// from a large tree still come out. The walk always runs to completion —
// ctx only bounds the lifetime of the progress reporter, which sends
// updates to progressHook if provided.
func Run(ctx context.Context, opt Options, rep Reporter, progressHook func(int64, int64)) (*Totals, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	if opt.Diag == nil {
		opt.Diag = os.Stderr
	}

	if rep == nil {
		rep = nopReporter{}
	}

	shared := &counters{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, shared, progressHook, opt.ProgressInterval)

	walker := &walker{
		recursive: opt.Recursive,
		ledger:    NewLedger(),
		totals:    shared,
		report:    rep,
		diag:      opt.Diag,
		log:       logger{enabled: opt.Debug},
	}

	start := time.Now()

	if _, err := walker.walk(opt.Path); err != nil {
		return nil, fmt.Errorf("listing %q: %w", opt.Path, err)
	}

	totals := summarize(shared, walker.ledger)

	totals.Elapsed = time.Since(start)

	return totals, nil
}
