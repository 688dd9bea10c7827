//go:build !windows

package linkdu

import (
	"io/fs"
	"syscall"
)

// fileIdentity extracts the (device, inode) identity and hard-link count
// from platform metadata. ok is false when the platform stat is
// unavailable.
func fileIdentity(info fs.FileInfo) (id FileID, nlink int64, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return FileID{}, 0, false
	}

	// Dev and Nlink are not the same width on all platforms.
	return FileID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, int64(st.Nlink), true
}
