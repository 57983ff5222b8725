package alloc

import "errors"

// ErrAllocFailed wraps every failure reported by the page allocator.
var ErrAllocFailed = errors.New("alloc: allocation failed")
