//go:build windows

package linkdu

import "io/fs"

// fileIdentity on Windows has no inode or hard-link information; the
// walker falls back to treating every file as uniquely linked.
func fileIdentity(_ fs.FileInfo) (FileID, int64, bool) {
	return FileID{}, 0, false
}
