//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

// Package mmap provides platform-specific helpers for mapping the anonymous
// memory arena that backs the page allocator.
package mmap

import "fmt"

// Anonymous allocates the arena on the Go heap when mmap is not available.
func Anonymous(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmap: invalid arena size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
