package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/fbratu/linkdu/internal/linkdu"
)

func logic(options linkdu.Options, out io.Writer) error {
	jsonMode := strings.ToLower(options.Output) == "json"

	enableProgress := !jsonMode &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(dirs, links int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(dirs, links int64) {
			msg := fmt.Sprintf("Scanning… %d directories, %d file links", dirs, links)
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	var (
		rep      linkdu.Reporter
		table    *TableReporter
		buffered *JSONReporter
	)

	if jsonMode {
		buffered = NewJSONReporter()
		rep = buffered
	} else {
		table = NewTableReporter(out)
		rep = table
	}

	totals, err := linkdu.Run(ctx, options, rep, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if jsonMode {
		return buffered.Print(out, totals)
	}

	return table.PrintTotals(totals)
}
