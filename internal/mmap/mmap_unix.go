//go:build linux || darwin || freebsd || netbsd || openbsd

// Package mmap provides platform-specific helpers for mapping the anonymous
// memory arena that backs the page allocator.
package mmap

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Anonymous maps a private, zero-filled, read/write region of size bytes.
// The returned release func unmaps it and treats a second call as a no-op.
func Anonymous(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmap: invalid arena size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap: map %d bytes: %w", size, err)
	}
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, release, nil
}
