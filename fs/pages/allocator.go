package pages

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/minifs/internal/buf"
	"github.com/joshuapare/minifs/internal/format"
	"github.com/joshuapare/minifs/internal/logger"
	"github.com/joshuapare/minifs/internal/mmap"
)

// Options configures an Allocator.
type Options struct {
	// Arena is the memory handed out. Its length must be a page multiple.
	Arena []byte
	// Release is called once by Close. May be nil.
	Release func() error

	LogicalBase  uint64
	PhysicalBase uint64

	Logger *slog.Logger
}

// Stats contains allocation statistics.
type Stats struct {
	Allocations uint64 // Number of successful allocations
	BytesServed uint64 // Bytes handed out, excluding alignment padding
	Cursor      uint64 // Arena offset of the next allocation
	Capacity    uint64 // Arena size in bytes
	Failures    uint64 // Requests rejected with ErrNoSpace
}

// Allocator is an append-only page allocator over a fixed arena.
type Allocator struct {
	arena   []byte
	release func() error

	logicalBase  uint64
	physicalBase uint64

	// next is the bump pointer: the arena offset where the next allocation
	// will occur.
	next uint64

	stats  Stats
	log    *slog.Logger
	closed bool
}

// New creates an Allocator over opts.Arena.
func New(opts Options) (*Allocator, error) {
	size := uint64(len(opts.Arena))
	if size == 0 || !format.IsPageAligned(size) {
		return nil, fmt.Errorf("pages: arena size %d is not a positive page multiple", size)
	}
	if !format.IsPageAligned(opts.LogicalBase) || !format.IsPageAligned(opts.PhysicalBase) {
		return nil, fmt.Errorf("pages: bases 0x%x/0x%x must be page aligned", opts.LogicalBase, opts.PhysicalBase)
	}
	if _, ok := buf.AddU64(opts.LogicalBase, size); !ok {
		return nil, fmt.Errorf("pages: logical range overflows at base 0x%x", opts.LogicalBase)
	}
	if _, ok := buf.AddU64(opts.PhysicalBase, size); !ok {
		return nil, fmt.Errorf("pages: physical range overflows at base 0x%x", opts.PhysicalBase)
	}
	return &Allocator{
		arena:        opts.Arena,
		release:      opts.Release,
		logicalBase:  opts.LogicalBase,
		physicalBase: opts.PhysicalBase,
		stats:        Stats{Capacity: size},
		log:          logger.OrDiscard(opts.Logger),
	}, nil
}

// NewMapped maps an anonymous arena of size bytes (rounded up to a page) and
// wraps it in an Allocator. Close unmaps the arena.
func NewMapped(size, logicalBase, physicalBase uint64, log *slog.Logger) (*Allocator, error) {
	size = format.AlignPage(size)
	if size == 0 || size > uint64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("pages: invalid arena size %d", size)
	}
	arena, release, err := mmap.Anonymous(int(size))
	if err != nil {
		return nil, err
	}
	a, err := New(Options{
		Arena:        arena,
		Release:      release,
		LogicalBase:  logicalBase,
		PhysicalBase: physicalBase,
		Logger:       log,
	})
	if err != nil {
		_ = release()
		return nil, err
	}
	return a, nil
}

// AllocPages reserves size bytes. With align set, the block starts on a page
// boundary. The returned slice has exactly size bytes and is not cleared;
// memory that was never handed out before is zero, but callers that need a
// guarantee must clear it themselves.
func (a *Allocator) AllocPages(size uint64, align bool) (logical, physical uint64, mem []byte, err error) {
	if a.closed {
		return 0, 0, nil, ErrClosed
	}
	if size == 0 {
		return 0, 0, nil, ErrZeroSize
	}

	start := a.next
	if align {
		start = format.AlignPage(start)
	}
	end, ok := buf.AddU64(start, size)
	if !ok || start < a.next || end > a.stats.Capacity {
		a.stats.Failures++
		a.log.Warn("page allocation failed",
			"size", size, "align", align, "cursor", a.next, "capacity", a.stats.Capacity)
		return 0, 0, nil, fmt.Errorf("%w: need %d bytes at offset %d, capacity %d",
			ErrNoSpace, size, start, a.stats.Capacity)
	}

	a.next = end
	a.stats.Cursor = end
	a.stats.Allocations++
	a.stats.BytesServed += size

	logical = a.logicalBase + start
	physical = a.physicalBase + start
	a.log.Debug("pages allocated",
		"size", size, "align", align, "logical", format.Hex(logical), "physical", format.Hex(physical))

	return logical, physical, a.arena[start:end:end], nil
}

// Stats returns a snapshot of the allocation counters.
func (a *Allocator) Stats() Stats {
	return a.stats
}

// Remaining returns the bytes left between the cursor and the arena end.
func (a *Allocator) Remaining() uint64 {
	return a.stats.Capacity - a.next
}

// Close releases the arena. Regions handed out become invalid.
func (a *Allocator) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.arena = nil
	if a.release != nil {
		return a.release()
	}
	return nil
}
