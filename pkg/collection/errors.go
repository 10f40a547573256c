package collection

import "errors"

// ErrInvalidArgument indicates that an operation was called with an inconsistent or missing argument.
var ErrInvalidArgument = errors.New("invalid argument")
