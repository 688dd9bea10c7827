// Package linkdu computes storage statistics for a directory tree.
//
// It walks directories depth-first, counting file links and bytes per
// directory level, and records every regular file's inode in a ledger so
// that hard links inside the tree are counted once. After the walk the
// ledger reveals which files still have links outside the tree: their
// on-disk link count exceeds the number of links the walk found.
package linkdu
