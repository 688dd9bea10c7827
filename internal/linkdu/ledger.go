package linkdu

// FileID identifies an inode on a particular device. Inode numbers are
// only unique within one filesystem, so the device id is part of the key.
type FileID struct {
	Dev uint64 `json:"dev"`
	Ino uint64 `json:"ino"`
}

// Entry tracks one distinct inode observed among the regular files of the
// walk.
type Entry struct {
	// Size is the file's byte count.
	Size int64
	// Links starts at the file's on-disk hard-link count and is decremented
	// once for every re-encounter of the same inode inside the tree. A value
	// above 1 after the walk means the file has links outside the tree.
	Links int64
	// ID is the identity key.
	ID FileID
}

// Ledger is the registry of per-inode entries used to deduplicate
// multiply-linked files. It grows monotonically: entries are never
// deleted, and the whole registry is read once after the walk.
type Ledger struct {
	index map[FileID]int
	order []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[FileID]int)}
}

// LookupAndDecrement reports whether id is already tracked, decrementing
// the entry's remaining link count when it is. A miss makes no mutation.
// Callers must consult this before Insert: inserting first would lose a
// decrement and misreport the file as linked outside the tree.
func (l *Ledger) LookupAndDecrement(id FileID) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}

	l.order[i].Links--

	return true
}

// Insert adds a new entry for an identity not yet tracked.
func (l *Ledger) Insert(size, links int64, id FileID) {
	l.index[id] = len(l.order)
	l.order = append(l.order, Entry{Size: size, Links: links, ID: id})
}

// ForEach visits every entry once, in insertion order.
func (l *Ledger) ForEach(visit func(Entry)) {
	for _, e := range l.order {
		visit(e)
	}
}

// Len returns the number of distinct inodes tracked.
func (l *Ledger) Len() int {
	return len(l.order)
}
