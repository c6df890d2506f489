package spec

import "errors"

// ErrInvalidSpec is returned when a Specification cannot be constructed,
// e.g. because its type name is empty.
var ErrInvalidSpec = errors.New("invalid specification")
