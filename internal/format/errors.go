package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadSlot indicates a slot index outside the table.
	ErrBadSlot = errors.New("format: slot out of range")
	// ErrNameTooLong indicates a name that does not fit the on-table name field.
	ErrNameTooLong = errors.New("format: name too long")
)
