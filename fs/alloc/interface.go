package alloc

// PageAllocator is the lower-level allocator the Bridge draws from.
//
// Implementations:
//   - pages.Allocator: bump allocator over an anonymous arena
type PageAllocator interface {
	// AllocPages reserves size bytes, page aligned when align is set, and
	// returns the block's logical and physical addresses and its memory.
	// The memory may hold stale bytes.
	AllocPages(size uint64, align bool) (logical, physical uint64, mem []byte, err error)
}
