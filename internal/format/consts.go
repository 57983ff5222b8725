// Package format houses the fixed constants and low-level encoders for the
// directory table. The table is a flat array of fixed-size slot records kept
// inside a single allocated region, so everything here is plain offset math
// over a byte slice and independent from the higher-level packages.
package format

const (
	// PageSize is the allocation granularity of the page allocator. Every
	// file region is a whole number of pages.
	PageSize = 0x1000

	// PageAlignmentMask is the bitmask used for aligning to page boundaries (PageSize - 1).
	PageAlignmentMask = PageSize - 1

	// MaxFiles is the number of slots in the directory table.
	MaxFiles = 16

	// MaxName is the width of the on-table name field. Names must be strictly
	// shorter so the field always carries a terminating NUL.
	MaxName = 16
)

// ============================================================================
// Slot Record Constants
// ============================================================================
// Slot record field offsets. All integers are little-endian.
const (
	RecordNameOffset     = 0x00 // [MaxName]byte, NUL padded
	RecordSizeOffset     = 0x10 // ULONG requested size in bytes
	RecordAllocOffset    = 0x14 // ULONG allocated bytes (page multiple)
	RecordLogicalOffset  = 0x18 // ULONGLONG logical address of the region
	RecordPhysicalOffset = 0x20 // ULONGLONG physical address of the region
	RecordActiveOffset   = 0x28 // UCHAR 1 = in use, 0 = free
	RecordReservedOffset = 0x29 // 7 bytes, always zero
)

// RecordSize is the size of one slot record. Kept a multiple of 8 so every
// 64-bit field stays naturally aligned across the table.
const RecordSize = 0x30

// TableSize is the number of bytes the directory table occupies.
const TableSize = MaxFiles * RecordSize
