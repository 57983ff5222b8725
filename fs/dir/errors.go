package dir

import "errors"

var (
	// ErrUsage indicates a missing or empty argument.
	ErrUsage = errors.New("dir: missing argument")

	// ErrNameTooLong indicates a name of MaxName bytes or more.
	ErrNameTooLong = errors.New("dir: name too long")

	// ErrExists indicates the name is already used by an active record.
	ErrExists = errors.New("dir: exists")

	// ErrZeroSize indicates a requested size of zero.
	ErrZeroSize = errors.New("dir: size must be > 0")

	// ErrFull indicates every slot is active.
	ErrFull = errors.New("dir: directory full")

	// ErrNotFound indicates no active record has the name.
	ErrNotFound = errors.New("dir: not found")
)
