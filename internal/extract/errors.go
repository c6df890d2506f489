package extract

import "errors"

// ErrMissingSpec is returned when a relationship type is not registered and
// the StorePolicy does not allow inferring it.
var ErrMissingSpec = errors.New("missing specification")
