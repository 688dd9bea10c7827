package linkdu

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	shared := &counters{}
	shared.add(3, 7)

	ledger := NewLedger()
	ledger.Insert(100, 1, FileID{Ino: 1})
	ledger.Insert(200, 2, FileID{Ino: 2}) // one link never found in the tree
	ledger.Insert(300, 1, FileID{Ino: 3})

	totals := summarize(shared, ledger)

	assert.Equal(t, 3, totals.Dirs)
	assert.Equal(t, 7, totals.FileLinks)
	assert.Equal(t, 3, totals.Files)
	assert.Equal(t, int64(600), totals.FileSpace)
	assert.Equal(t, 1, totals.OutsideFiles)
	assert.Equal(t, int64(200), totals.OutsideSpace)
}

func TestRunDefaultsToCurrentDirectory(t *testing.T) {
	root := t.TempDir()
	writeBytes(t, root+"/f", 8)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { os.Chdir(wd) })

	totals, err := Run(context.Background(), Options{}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, totals.Dirs)
	assert.Equal(t, 1, totals.FileLinks)
	assert.Equal(t, int64(8), totals.FileSpace)
}

func TestProgressReporter(t *testing.T) {
	shared := &counters{}
	shared.add(3, 7)

	got := make(chan [2]int64, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startProgressReporter(ctx, shared, func(dirs, links int64) {
		select {
		case got <- [2]int64{dirs, links}:
		default:
		}
	}, time.Millisecond)

	select {
	case update := <-got:
		assert.Equal(t, [2]int64{3, 7}, update)
	case <-time.After(5 * time.Second):
		t.Fatal("no progress update received")
	}
}

func TestProgressReporterNilHook(t *testing.T) {
	// Must be a no-op rather than a panic.
	startProgressReporter(context.Background(), &counters{}, nil, time.Millisecond)
}
