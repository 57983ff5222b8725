// Package dir implements the flat directory: a fixed table of named file
// records, each owning a page-granular region of backing memory.
//
// The table itself lives in one region obtained from the allocator when the
// Directory is created. Each slot is a format.SlotRecord; a slot is either
// fully populated (active) or all zero. Names are compared byte for byte.
// Callers that want case-insensitive behavior normalize names before they
// get here, which is what the shell does.
//
// Deleting a file clears its slot but does not give its region back: the
// allocator has no free, so the memory stays reserved until the allocator
// itself is closed.
package dir
