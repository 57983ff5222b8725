package format

// AlignPage returns n aligned up to the next page (4096-byte) boundary.
// Used for file regions which are always handed out in whole pages.
//
// Example:
//
//	AlignPage(1)    = 4096
//	AlignPage(4096) = 4096
//	AlignPage(4097) = 8192
//
// Zero stays zero. Callers reject zero sizes before rounding.
func AlignPage(n uint64) uint64 {
	return (n + PageAlignmentMask) &^ PageAlignmentMask
}

// IsPageAligned reports whether n sits on a page boundary.
func IsPageAligned(n uint64) bool {
	return n&PageAlignmentMask == 0
}

// PagesFor returns how many pages are needed to hold n bytes.
func PagesFor(n uint64) uint64 {
	return AlignPage(n) / PageSize
}
