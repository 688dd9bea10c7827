package linkdu

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// walker carries the state shared by every frame of the recursive descent:
// the recursion flag, the inode ledger, the run-wide counters, the report
// sink, and the diagnostic writer. No frame-local state lives here.
type walker struct {
	recursive bool
	ledger    *Ledger
	totals    *counters
	report    Reporter
	diag      io.Writer
	log       logger

	// syntheticIno hands out substitute identities on platforms without
	// inode support, so every file gets exactly one ledger entry.
	syntheticIno uint64
}

// stripTrailingSeparators drops trailing path separators. Purely cosmetic
// for constructed child paths and the report: /usr/bin///ls is valid, but
// /usr/bin/ls reads better.
func stripTrailingSeparators(path string) string {
	return strings.TrimRight(path, string(os.PathSeparator))
}

// walk lists path, accumulates this directory's stats, registers every
// regular file in the ledger, and descends into sub-directories when
// recursion is enabled. The per-directory report is emitted before
// returning, so children report before their parent.
//
// An open failure is returned without being written to the diagnostic
// channel; the caller decides whether it is fatal (top level) or merely
// reportable (a failed descent).
func (w *walker) walk(path string) (DirStats, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return DirStats{}, err
	}

	stats := DirStats{Path: stripTrailingSeparators(path)}

	for _, entry := range entries {
		child := stats.Path + string(os.PathSeparator) + entry.Name()

		// Metadata without following symlinks. A failed lookup skips the
		// entry; it contributes to no counter.
		info, err := entry.Info()
		if err != nil {
			fmt.Fprintln(w.diag, err)

			continue
		}

		switch {
		case info.Mode().IsRegular():
			stats.FileLinks++
			stats.FileSpace += info.Size()

			id, nlink, ok := fileIdentity(info)
			if !ok {
				w.syntheticIno++
				id = FileID{Dev: ^uint64(0), Ino: w.syntheticIno}
				nlink = 1
			}

			if w.ledger.LookupAndDecrement(id) {
				w.log.printf("[debug]: duplicate link: %s\n", child)
			} else {
				w.ledger.Insert(info.Size(), nlink, id)
			}
		case info.IsDir() && entry.Name() != "." && entry.Name() != "..":
			stats.SubDirs++
			stats.SubDirSpace += info.Size()

			if w.recursive {
				// A failed descent is reported here and swallowed; the
				// remaining siblings still get processed. The child's own
				// stats were already emitted by its call.
				if _, err := w.walk(child); err != nil {
					fmt.Fprintln(w.diag, err)
				}
			}
		default:
			// Symlinks, devices, sockets, fifos: ignored entirely.
			w.log.printf("[debug]: skipping %s (%s)\n", child, info.Mode().Type())
		}
	}

	w.totals.add(1, int64(stats.FileLinks))
	w.report.Dir(stats)

	return stats, nil
}
