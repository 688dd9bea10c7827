package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/fbratu/linkdu/internal/linkdu"
)

// TableReporter prints each directory's statistics as soon as its walk
// frame finishes, so a long run shows progress instead of a final dump.
type TableReporter struct {
	w io.Writer
}

// NewTableReporter creates a reporter writing to w.
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{w: w}
}

// Dir implements linkdu.Reporter.
//
//nolint:forbidigo // This function prints output to the console.
func (r *TableReporter) Dir(stats linkdu.DirStats) {
	fmt.Fprintf(r.w, "Directory: %s\n", stats.Path)
	fmt.Fprintf(r.w, "  Total file links: %d\n", stats.FileLinks)
	fmt.Fprintf(r.w, "  Total file space: %d\n", stats.FileSpace)
	fmt.Fprintf(r.w, "  Total sub-directories: %d\n", stats.SubDirs)
	fmt.Fprintf(r.w, "  Total sub-directory file space: %d\n", stats.SubDirSpace)
}

// PrintTotals prints the grand-totals block after the walk.
func (r *TableReporter) PrintTotals(totals *linkdu.Totals) error {
	fmt.Fprintf(r.w, "Total directories encountered: %d\n", totals.Dirs)
	fmt.Fprintf(r.w, "Total file links: %d\n", totals.FileLinks)
	fmt.Fprintf(r.w, "Total files: %d\n", totals.Files)
	fmt.Fprintf(r.w, "Total file space: %d (%s)\n",
		totals.FileSpace, humanize.IBytes(uint64(totals.FileSpace))) //nolint:gosec // Sizes are non-negative
	fmt.Fprintf(r.w, "Files linked outside directory structure: %d\n", totals.OutsideFiles)

	_, err := fmt.Fprintf(r.w, "File Space linked outside directory structure: %d (%s)\n",
		totals.OutsideSpace, humanize.IBytes(uint64(totals.OutsideSpace))) //nolint:gosec // Sizes are non-negative

	return err
}

// Report is the document emitted in JSON mode.
type Report struct {
	// Directories holds the per-directory statistics in walk order.
	Directories []linkdu.DirStats `json:"directories"`
	// Totals holds the grand totals.
	Totals *linkdu.Totals `json:"totals"`
}

// JSONReporter buffers per-directory statistics so the whole run can be
// emitted as a single well-formed document.
type JSONReporter struct {
	dirs []linkdu.DirStats
}

// NewJSONReporter creates an empty buffering reporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{dirs: make([]linkdu.DirStats, 0)}
}

// Dir implements linkdu.Reporter.
func (r *JSONReporter) Dir(stats linkdu.DirStats) {
	r.dirs = append(r.dirs, stats)
}

// Print outputs the buffered directories and the totals in JSON format.
func (r *JSONReporter) Print(writer io.Writer, totals *linkdu.Totals) error {
	data, err := json.MarshalIndent(Report{Directories: r.dirs, Totals: totals}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}
