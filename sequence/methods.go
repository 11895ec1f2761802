// SPDX-License-Identifier: MIT

// File: methods.go
// Role: Sequence queries, mutation, growth and shrink.
//
// Failure policy:
//   - Every fallible method returns one of the package sentinels unwrapped.
//   - The same error is passed to the ErrorSink (if any) exactly once.
//   - A nil or destroyed receiver never panics; it degrades to sentinels.
package sequence

// valid reports whether s can be operated on.
func (s *Sequence[T]) valid() bool { return s != nil && !s.destroyed }

// fail reports err to the sink and returns it unchanged.
func (s *Sequence[T]) fail(op string, err error) error {
	if s != nil && s.sink != nil {
		s.sink(op, err)
	}

	return err
}

// checkIndex validates 0 <= i < limit.
func checkIndex(i, limit int) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	if i >= limit {
		return ErrIndexOutOfBounds
	}

	return nil
}

// Size returns the number of valid entries, or InvalidSize for a nil or
// destroyed Sequence.
func (s *Sequence[T]) Size() int {
	if !s.valid() {
		return InvalidSize
	}

	return s.size
}

// Capacity returns the current capacity, or InvalidSize for a nil or
// destroyed Sequence.
func (s *Sequence[T]) Capacity() int {
	if !s.valid() {
		return InvalidSize
	}

	return len(s.items)
}

// IsEmpty reports true for a nil or destroyed Sequence or one with no entries.
func (s *Sequence[T]) IsEmpty() bool {
	return !s.valid() || s.size == 0
}

// Growable reports whether Add/Insert may grow the capacity.
func (s *Sequence[T]) Growable() bool { return s.valid() && s.growable }

// GrowthFactor returns the growth multiplier (0 for an invalid handle).
func (s *Sequence[T]) GrowthFactor() int {
	if !s.valid() {
		return 0
	}

	return s.growthFactor
}

// Get returns the item at index i.
// On failure it returns the zero value of T and one of ErrInvalidHandle,
// ErrNegativeIndex or ErrIndexOutOfBounds.
// Complexity: O(1).
func (s *Sequence[T]) Get(i int) (T, error) {
	var zero T
	if !s.valid() {
		return zero, s.fail("Get", ErrInvalidHandle)
	}
	if err := checkIndex(i, s.size); err != nil {
		return zero, s.fail("Get", err)
	}

	return s.items[i], nil
}

// Set overwrites the item at index i, which must lie in [0,Size()).
// Set never grows the Sequence.
// Complexity: O(1).
func (s *Sequence[T]) Set(i int, item T) error {
	if !s.valid() {
		return s.fail("Set", ErrInvalidHandle)
	}
	if err := checkIndex(i, s.size); err != nil {
		return s.fail("Set", err)
	}
	s.items[i] = item

	return nil
}

// IndexOf returns the first index whose item matches item under eq, scanning
// from 0. A nil eq compares with ==, which for pointer items is reference
// identity. On a miss it returns NotFound and ErrItemNotFound.
// Complexity: O(n).
func (s *Sequence[T]) IndexOf(item T, eq EqualFunc[T]) (int, error) {
	if !s.valid() {
		return NotFound, s.fail("IndexOf", ErrInvalidHandle)
	}
	if i := s.find(item, eq); i != NotFound {
		return i, nil
	}

	return NotFound, s.fail("IndexOf", ErrItemNotFound)
}

// IndexFunc returns the first index whose item satisfies pred.
// On a miss, or when pred is nil, it returns NotFound and ErrItemNotFound.
// Complexity: O(n).
func (s *Sequence[T]) IndexFunc(pred func(item T) bool) (int, error) {
	if !s.valid() {
		return NotFound, s.fail("IndexFunc", ErrInvalidHandle)
	}
	if pred == nil {
		return NotFound, s.fail("IndexFunc", ErrItemNotFound)
	}
	var i int
	for i = 0; i < s.size; i++ {
		if pred(s.items[i]) {
			return i, nil
		}
	}

	return NotFound, s.fail("IndexFunc", ErrItemNotFound)
}

// Contains reports whether item is present under == without touching the sink.
func (s *Sequence[T]) Contains(item T) bool {
	return s.valid() && s.find(item, nil) != NotFound
}

func (s *Sequence[T]) find(item T, eq EqualFunc[T]) int {
	var i int
	for i = 0; i < s.size; i++ {
		if eq == nil {
			if s.items[i] == item {
				return i
			}
			continue
		}
		if eq(s.items[i], item) {
			return i
		}
	}

	return NotFound
}

// Add appends item at index Size().
//
// Implementation:
//   - Stage 1: Validate the handle.
//   - Stage 2: If full, grow by growthFactor or fail with ErrCapacityExceeded.
//   - Stage 3: Store item and bump size.
//
// A failed Add leaves size and every entry unchanged.
// Complexity: O(1) amortized, O(n) on a growth event.
func (s *Sequence[T]) Add(item T) error { return s.add("Add", item) }

func (s *Sequence[T]) add(op string, item T) error {
	if !s.valid() {
		return s.fail(op, ErrInvalidHandle)
	}
	if err := s.ensureRoom(); err != nil {
		return s.fail(op, err)
	}
	s.items[s.size] = item
	s.size++

	return nil
}

// Insert places item at index i and shifts [i,Size()) one position right.
// i == Size() appends. Capacity is checked (and grown) before shifting.
// Complexity: O(n).
func (s *Sequence[T]) Insert(i int, item T) error {
	if !s.valid() {
		return s.fail("Insert", ErrInvalidHandle)
	}
	// i may equal size: insertion at the tail.
	if err := checkIndex(i, s.size+1); err != nil {
		return s.fail("Insert", err)
	}
	if err := s.ensureRoom(); err != nil {
		return s.fail("Insert", err)
	}
	copy(s.items[i+1:s.size+1], s.items[i:s.size])
	s.items[i] = item
	s.size++

	return nil
}

// RemoveAt deletes the item at index i, shifting [i+1,Size()) one position
// left, and returns the removed item. With WithShrinkable, capacity may be
// reduced afterwards; otherwise it is never reduced.
// Complexity: O(n); O(1) when i is the last index.
func (s *Sequence[T]) RemoveAt(i int) (T, error) {
	var zero T
	if !s.valid() {
		return zero, s.fail("RemoveAt", ErrInvalidHandle)
	}
	if err := checkIndex(i, s.size); err != nil {
		return zero, s.fail("RemoveAt", err)
	}

	return s.removeAt(i), nil
}

func (s *Sequence[T]) removeAt(i int) T {
	var zero T
	removed := s.items[i]
	copy(s.items[i:s.size-1], s.items[i+1:s.size])
	s.size--
	s.items[s.size] = zero
	s.maybeShrink()

	return removed
}

// Remove deletes the first item equal (==) to item.
// Returns ErrItemNotFound when absent.
// Complexity: O(n).
func (s *Sequence[T]) Remove(item T) error {
	if !s.valid() {
		return s.fail("Remove", ErrInvalidHandle)
	}
	i := s.find(item, nil)
	if i == NotFound {
		return s.fail("Remove", ErrItemNotFound)
	}
	s.removeAt(i)

	return nil
}

// Push appends item; it is Add under a stack-flavoured name.
func (s *Sequence[T]) Push(item T) error { return s.add("Push", item) }

// Pop removes and returns the last item.
// An empty Sequence yields ErrIndexOutOfBounds.
// Complexity: O(1).
func (s *Sequence[T]) Pop() (T, error) {
	var zero T
	if !s.valid() {
		return zero, s.fail("Pop", ErrInvalidHandle)
	}
	if s.size == 0 {
		return zero, s.fail("Pop", ErrIndexOutOfBounds)
	}

	return s.removeAt(s.size - 1), nil
}

// Peek returns the last item without removing it.
func (s *Sequence[T]) Peek() (T, error) {
	var zero T
	if !s.valid() {
		return zero, s.fail("Peek", ErrInvalidHandle)
	}
	if s.size == 0 {
		return zero, s.fail("Peek", ErrIndexOutOfBounds)
	}

	return s.items[s.size-1], nil
}

// CopyRange appends s[from:to) to dst in order. Errors raised by dst (for
// example ErrCapacityExceeded on a fixed dst) abort the copy and are
// returned as-is; entries appended before the failure stay in dst.
func (s *Sequence[T]) CopyRange(dst *Sequence[T], from, to int) error {
	if !s.valid() {
		return s.fail("CopyRange", ErrInvalidHandle)
	}
	if from < 0 || to < 0 {
		return s.fail("CopyRange", ErrNegativeIndex)
	}
	if to > s.size || from > to {
		return s.fail("CopyRange", ErrIndexOutOfBounds)
	}
	var i int
	for i = from; i < to; i++ {
		if err := dst.Add(s.items[i]); err != nil {
			return err
		}
	}

	return nil
}

// Values returns a copy of the valid entries (nil for an invalid handle).
func (s *Sequence[T]) Values() []T {
	if !s.valid() {
		return nil
	}
	out := make([]T, s.size)
	copy(out, s.items[:s.size])

	return out
}

// Each calls fn for every entry in order until fn returns false.
// fn must not mutate s.
func (s *Sequence[T]) Each(fn func(i int, item T) bool) {
	if !s.valid() {
		return
	}
	var i int
	for i = 0; i < s.size; i++ {
		if !fn(i, s.items[i]) {
			return
		}
	}
}

// Clear drops every entry. Capacity is kept.
func (s *Sequence[T]) Clear() {
	if !s.valid() {
		return
	}
	clear(s.items[:s.size])
	s.size = 0
}

// Destroy releases the backing array. Referenced items are untouched.
// Afterwards every method degrades to its invalid-handle result.
func (s *Sequence[T]) Destroy() {
	if s == nil {
		return
	}
	s.items = nil
	s.size = 0
	s.destroyed = true
}

// ensureRoom guarantees one free slot, growing if allowed.
func (s *Sequence[T]) ensureRoom() error {
	if s.size < len(s.items) {
		return nil
	}
	if !s.growable {
		return ErrCapacityExceeded
	}
	s.resize(len(s.items) * s.growthFactor)

	return nil
}

// resize reallocates the backing array to n slots, preserving [0,size).
func (s *Sequence[T]) resize(n int) {
	next := make([]T, n)
	copy(next, s.items[:s.size])
	s.items = next
}

// maybeShrink divides capacity by growthFactor once size has fallen to
// capacity/growthFactor², never going below the initial capacity.
func (s *Sequence[T]) maybeShrink() {
	if !s.shrinkable {
		return
	}
	capNow := len(s.items)
	if capNow <= s.initialCap || s.size*s.growthFactor*s.growthFactor > capNow {
		return
	}
	next := capNow / s.growthFactor
	if next < s.initialCap {
		next = s.initialCap
	}
	s.resize(next)
}
