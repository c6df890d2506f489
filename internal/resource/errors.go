package resource

import "errors"

var (
	// ErrUnknownType is returned when a type is not registered.
	ErrUnknownType = errors.New("unknown resource type")

	// ErrUnsupportedInput is returned by Serialize for input that is neither
	// a record nor a sequence of records.
	ErrUnsupportedInput = errors.New("unsupported input")
)
