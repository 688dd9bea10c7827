package linkdu

import (
	"io"
	"sync"
	"time"
)

// Options configures a statistics run.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Recursive enables descent into sub-directories.
	Recursive bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Diag receives one line per failed directory open or metadata lookup.
	// Defaults to os.Stderr.
	Diag io.Writer
}

// DirStats holds the counters for a single directory level. They cover the
// directory's direct entries only, never the contents of sub-directories.
type DirStats struct {
	// Path is the directory the stats describe, trailing separators stripped.
	Path string `json:"path"`
	// FileLinks is the number of regular-file links found directly here.
	FileLinks int `json:"file_links"`
	// FileSpace is the byte total of those file links.
	FileSpace int64 `json:"file_space"`
	// SubDirs is the number of immediate sub-directories.
	SubDirs int `json:"sub_dirs"`
	// SubDirSpace is the byte total of the sub-directory entries themselves.
	SubDirSpace int64 `json:"sub_dir_space"`
}

// Totals holds the grand totals for a whole run.
type Totals struct {
	// Dirs is the number of directories visited.
	Dirs int `json:"directories"`
	// FileLinks counts every file link encountered, duplicates included.
	FileLinks int `json:"file_links"`
	// Files is the number of distinct files (hard links deduplicated).
	Files int `json:"files"`
	// FileSpace is the byte total of the distinct files.
	FileSpace int64 `json:"file_space"`
	// OutsideFiles is the number of files with links outside the tree.
	OutsideFiles int `json:"outside_files"`
	// OutsideSpace is the byte total of those outside-linked files.
	OutsideSpace int64 `json:"outside_space"`
	// Elapsed is the total time taken for the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Reporter receives one DirStats per visited directory, in the order the
// walk finishes them (children before their parent).
type Reporter interface {
	Dir(DirStats)
}

// nopReporter discards reports.
type nopReporter struct{}

func (nopReporter) Dir(DirStats) {}

// counters are the run-wide directory and file-link tallies. Every walk
// frame adds to them; the mutex exists so the progress reporter goroutine
// can read a consistent snapshot while the walk is running.
type counters struct {
	mu    sync.Mutex
	dirs  int64
	links int64
}

// add accumulates into the shared tallies.
func (c *counters) add(dirs, links int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dirs += dirs
	c.links += links
}

// snapshot returns the current tallies.
func (c *counters) snapshot() (dirs, links int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dirs, c.links
}
