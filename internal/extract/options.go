package extract

import (
	"log/slog"

	"resource-assembler/internal/common"
)

// StorePolicy governs relationships whose type is not found in the Lookup.
type StorePolicy int

const (
	// StoreUnset fails with ErrMissingSpec: every relationship type must be registered.
	StoreUnset StorePolicy = iota
	// StoreOnly behaves like StoreUnset.
	StoreOnly
	// StoreFallback infers an empty Specification typed by the field name.
	StoreFallback
)

// String returns a human-readable policy name.
func (p StorePolicy) String() string {
	switch p {
	case StoreUnset:
		return "unset"
	case StoreOnly:
		return "store-only"
	case StoreFallback:
		return "fallback"
	default:
		return common.UnknownStr
	}
}

// Strict returns true if an unregistered relationship type is an error.
func (p StorePolicy) Strict() bool {
	return p != StoreFallback
}

// Option configures an Extractor.
type Option func(*options)

type options struct {
	policy StorePolicy
	logger *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithStorePolicy sets the policy for unregistered relationship types.
func WithStorePolicy(p StorePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger receiving debug records about dropped
// relationships and skipped resources. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
