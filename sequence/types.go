// SPDX-License-Identifier: MIT

// Package sequence: types, sentinel errors, options and the New constructor.
package sequence

import "errors"

// Sentinel errors for sequence operations. They are returned unwrapped so
// callers can compare with errors.Is.
var (
	// ErrInvalidHandle indicates a nil or destroyed Sequence.
	ErrInvalidHandle = errors.New("sequence: invalid handle")

	// ErrCapacityExceeded indicates the Sequence is full and growth is disabled.
	ErrCapacityExceeded = errors.New("sequence: capacity exceeded")

	// ErrNegativeIndex indicates an index below zero.
	ErrNegativeIndex = errors.New("sequence: negative index")

	// ErrIndexOutOfBounds indicates an index at or past the valid range.
	ErrIndexOutOfBounds = errors.New("sequence: index out of bounds")

	// ErrItemNotFound indicates no element matched during IndexOf or Remove.
	ErrItemNotFound = errors.New("sequence: item not found")
)

// Defaults applied by New when an option is absent or nonsensical.
const (
	DefaultCapacity     = 10
	DefaultGrowable     = true
	DefaultGrowthFactor = 2
	DefaultShrinkable   = false
)

// InvalidSize is returned by Size for a nil or destroyed Sequence.
const InvalidSize = -1

// NotFound is the index returned together with ErrItemNotFound.
const NotFound = -1

// Kind classifies a sequence error. KindNone marks success or a foreign error.
type Kind uint8

const (
	KindNone Kind = iota
	KindInvalidHandle
	KindCapacityExceeded
	KindNegativeIndex
	KindIndexOutOfBounds
	KindItemNotFound
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidHandle:
		return "InvalidHandle"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindNegativeIndex:
		return "NegativeIndex"
	case KindIndexOutOfBounds:
		return "IndexOutOfBounds"
	case KindItemNotFound:
		return "ItemNotFound"
	default:
		return "None"
	}
}

// KindOf maps err to its Kind using errors.Is, so wrapped sentinels are
// classified too. Unknown errors and nil map to KindNone.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidHandle):
		return KindInvalidHandle
	case errors.Is(err, ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, ErrNegativeIndex):
		return KindNegativeIndex
	case errors.Is(err, ErrIndexOutOfBounds):
		return KindIndexOutOfBounds
	case errors.Is(err, ErrItemNotFound):
		return KindItemNotFound
	default:
		return KindNone
	}
}

// ErrorSink observes failures. op is the method name ("Get", "Add", …) and
// err is exactly the error returned to the caller. Correctness never depends
// on the sink; it is a telemetry side channel.
type ErrorSink func(op string, err error)

// EqualFunc reports whether a and b should be treated as the same item.
type EqualFunc[T any] func(a, b T) bool

// Option configures a Sequence before creation.
type Option func(o *options)

// options is the resolved, type-independent configuration.
type options struct {
	capacity     int
	growable     bool
	growthFactor int
	shrinkable   bool
	sink         ErrorSink
}

func defaultOptions() options {
	return options{
		capacity:     DefaultCapacity,
		growable:     DefaultGrowable,
		growthFactor: DefaultGrowthFactor,
		shrinkable:   DefaultShrinkable,
	}
}

// WithCapacity sets the initial capacity. n <= 0 keeps DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithGrowable enables or disables growth when the Sequence is full.
func WithGrowable(on bool) Option {
	return func(o *options) { o.growable = on }
}

// WithFixedCapacity sets capacity n and disables growth.
func WithFixedCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
		o.growable = false
	}
}

// WithGrowthFactor sets the capacity multiplier used on growth.
// f <= 1 keeps DefaultGrowthFactor.
func WithGrowthFactor(f int) Option {
	return func(o *options) {
		if f > 1 {
			o.growthFactor = f
		}
	}
}

// WithShrinkable lets RemoveAt reclaim capacity once the Sequence drops to
// capacity/(growthFactor²) elements. Capacity never drops below the initial one.
func WithShrinkable() Option {
	return func(o *options) { o.shrinkable = true }
}

// WithErrorSink installs fn as the failure observer. A nil fn removes it.
func WithErrorSink(fn ErrorSink) Option {
	return func(o *options) { o.sink = fn }
}

// Sequence is a bounded, optionally-growable ordered container of item
// references. Entries [0,size) are valid in insertion order; entries
// [size,capacity) hold the zero value.
//
// The zero value is not usable; construct with New.
type Sequence[T comparable] struct {
	items []T // len(items) == capacity
	size  int

	initialCap   int
	growable     bool
	growthFactor int
	shrinkable   bool
	sink         ErrorSink

	destroyed bool
}

// New creates an empty Sequence. Without options it has capacity 10, grows
// by a factor of 2 and has no error sink.
// Complexity: O(capacity) for the backing allocation.
func New[T comparable](opts ...Option) *Sequence[T] {
	o := defaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Sequence[T]{
		items:        make([]T, o.capacity),
		initialCap:   o.capacity,
		growable:     o.growable,
		growthFactor: o.growthFactor,
		shrinkable:   o.shrinkable,
		sink:         o.sink,
	}
}
