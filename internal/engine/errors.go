package engine

import "errors"

// ErrUnknownCommand is returned when no command family accepts the input.
var ErrUnknownCommand = errors.New("unknown command")
