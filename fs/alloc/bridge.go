package alloc

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/minifs/internal/format"
	"github.com/joshuapare/minifs/internal/logger"
)

// Region is a zero-initialized block of backing memory.
type Region struct {
	Logical  uint64
	Physical uint64
	Data     []byte
}

// Size returns the number of bytes in the region.
func (r Region) Size() uint64 {
	return uint64(len(r.Data))
}

// Bridge hands out zeroed regions from a PageAllocator.
type Bridge struct {
	pa  PageAllocator
	log *slog.Logger
}

// NewBridge creates a Bridge over pa. A nil logger discards.
func NewBridge(pa PageAllocator, log *slog.Logger) *Bridge {
	return &Bridge{pa: pa, log: logger.OrDiscard(log)}
}

// Allocate reserves size bytes and zero-fills them before returning.
// Failures wrap ErrAllocFailed together with the allocator's own error.
func (b *Bridge) Allocate(size uint64, align bool) (Region, error) {
	logical, physical, mem, err := b.pa.AllocPages(size, align)
	if err != nil {
		b.log.Warn("bridge allocation failed", "size", size, "err", err)
		return Region{}, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}
	r := Region{Logical: logical, Physical: physical, Data: mem}
	if r.Size() != size {
		return Region{}, fmt.Errorf("%w: allocator returned %d bytes for %d", ErrAllocFailed, r.Size(), size)
	}
	clear(r.Data)
	b.log.Debug("region ready", "size", r.Size(), "logical", format.Hex(logical), "physical", format.Hex(physical))
	return r, nil
}
