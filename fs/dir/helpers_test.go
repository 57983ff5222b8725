package dir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/minifs/fs/alloc"
	"github.com/joshuapare/minifs/fs/pages"
	"github.com/joshuapare/minifs/internal/format"
)

// newTestDirectory creates a Directory over a heap arena of the given number
// of pages. The first page holds the slot table.
func newTestDirectory(t testing.TB, arenaPages int) (*Directory, *pages.Allocator) {
	t.Helper()
	pa, err := pages.New(pages.Options{
		Arena:        make([]byte, arenaPages*format.PageSize),
		LogicalBase:  0x10000,
		PhysicalBase: 0x10000,
	})
	require.NoError(t, err)
	d, err := New(alloc.NewBridge(pa, nil), nil)
	require.NoError(t, err)
	return d, pa
}

// snapshot collects the listing so tests can compare directory states.
func snapshot(d *Directory) []Record {
	var out []Record
	for r := range d.List() {
		out = append(out, r)
	}
	return out
}
