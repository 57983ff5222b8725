// Package pages implements the page allocator that hands out backing memory
// for the directory and its files.
//
// # Overview
//
// The allocator is a bump pointer over a fixed arena. Every request is
// served from the cursor; when the caller asks for page alignment the cursor
// first moves to the next 4 KiB boundary. Nothing is ever returned to the
// arena, so a region stays valid (and reserved) for the life of the
// allocator.
//
// # Addresses
//
// Each block carries two addresses derived from its arena offset:
//
//	logical  = LogicalBase  + offset
//	physical = PhysicalBase + offset
//
// With the default bases both are identical, mirroring an identity-mapped
// kernel heap. They are reporting values only; callers access memory through
// the returned byte slice.
//
// # Failure
//
// A request that does not fit returns ErrNoSpace and leaves the cursor where
// it was, so a failed allocation never consumes arena space.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. The shell drives them from a
// single goroutine.
package pages
