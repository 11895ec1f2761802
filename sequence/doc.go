// Package sequence provides Sequence[T], a bounded, optionally-growable,
// indexable container of item references with explicit failure reporting.
//
// What:
//
//   - Ordered storage of comparable items (typically pointers) in insertion order.
//   - Fixed or growable capacity; growth multiplies capacity by a growth factor.
//   - Indexed insert/remove with order-preserving shifts.
//   - Linear search by identity (==) or by a caller-supplied EqualFunc.
//   - Optional ErrorSink that observes every failure for telemetry.
//
// Why:
//
//   - Stacks for iterative walks (Push/Pop at the tail, O(1) amortized).
//   - Registries scanned by a custom key (IndexOf with EqualFunc).
//   - Fixed-size slot indexes that must never resize behind the caller's back
//     (WithFixedCapacity + ErrCapacityExceeded).
//
// Ownership:
//
//	A Sequence never owns, inspects or frees the items it references. Destroy
//	releases only the backing array. Removed and cleared slots are zeroed so
//	stale references do not keep items alive.
//
// Options:
//
//   - WithCapacity(n)          initial capacity (n<=0 ⇒ DefaultCapacity).
//   - WithGrowable(on)         enable or disable growth.
//   - WithFixedCapacity(n)     capacity n, growth disabled.
//   - WithGrowthFactor(f)      multiplier on growth (f<=1 ⇒ DefaultGrowthFactor).
//   - WithShrinkable()         reclaim capacity after removals (never below initial).
//   - WithErrorSink(fn)        telemetry hook called with (op, err) on each failure.
//
// Errors:
//
//   - ErrInvalidHandle      nil or destroyed Sequence.
//   - ErrCapacityExceeded   full and growth disabled.
//   - ErrNegativeIndex      index < 0.
//   - ErrIndexOutOfBounds   index past the valid range.
//   - ErrItemNotFound       IndexOf/Remove found no match.
//
// Concurrency:
//
//	Sequence is not synchronized. Wrap it in Locked when more than one
//	goroutine touches the same instance.
//
// Complexity:
//
//   - Get, Set, Size, Push, Pop, Peek: O(1) (Add/Push O(1) amortized).
//   - Insert, RemoveAt, Remove, IndexOf: O(n).
//   - Growth: O(n) copy per event.
package sequence
