package store

import "errors"

var (
	// ErrDuplicateName is returned when an entry with the same name (ignoring case) exists.
	ErrDuplicateName = errors.New("journal entry name already exists")
	// ErrEmptyName is returned when saving an entry without a name.
	ErrEmptyName = errors.New("journal entry name is empty")
)
