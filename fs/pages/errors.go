package pages

import "errors"

var (
	// ErrNoSpace indicates the arena has no room left for the request.
	ErrNoSpace = errors.New("pages: arena exhausted")

	// ErrZeroSize indicates a request for zero bytes.
	ErrZeroSize = errors.New("pages: zero-size request")

	// ErrClosed indicates use after Close.
	ErrClosed = errors.New("pages: allocator closed")
)
