package domain

import "errors"

// ErrInvalidArgument is returned when an argument makes an operation undefined,
// such as padding with an empty fill string.
var ErrInvalidArgument = errors.New("invalid argument")
