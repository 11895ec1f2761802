// SPDX-License-Identifier: MIT

// File: locked.go
// Role: caller-side mutual exclusion for a Sequence shared across goroutines.
//
// Concurrency:
//   - One sync.RWMutex per wrapped Sequence, held across the whole call, so
//     growth and shifts appear atomic to readers.
//   - Size, Capacity, IsEmpty and Values take the read lock.
//   - Get and IndexOf take the write lock: they may call the ErrorSink or
//     the EqualFunc, and those callbacks are never run concurrently.
//   - Callbacks run while the lock is held; they must not call back into
//     the same Locked.
package sequence

import "sync"

// Locked serializes access to one Sequence.
type Locked[T comparable] struct {
	mu  sync.RWMutex
	seq *Sequence[T]
}

// NewLocked creates a Sequence with opts and wraps it.
func NewLocked[T comparable](opts ...Option) *Locked[T] {
	return &Locked[T]{seq: New[T](opts...)}
}

// Wrap guards an existing Sequence. The caller must stop using seq directly.
func Wrap[T comparable](seq *Sequence[T]) *Locked[T] {
	return &Locked[T]{seq: seq}
}

// Size returns the guarded Sequence's size.
func (l *Locked[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.seq.Size()
}

// Capacity returns the guarded Sequence's capacity.
func (l *Locked[T]) Capacity() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.seq.Capacity()
}

// IsEmpty reports whether the guarded Sequence has no entries.
func (l *Locked[T]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.seq.IsEmpty()
}

// Get returns the item at index i.
func (l *Locked[T]) Get(i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.Get(i)
}

// Set overwrites the item at index i.
func (l *Locked[T]) Set(i int, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.Set(i, item)
}

// IndexOf finds item under eq (nil ⇒ ==).
func (l *Locked[T]) IndexOf(item T, eq EqualFunc[T]) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.IndexOf(item, eq)
}

// Add appends item.
func (l *Locked[T]) Add(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.Add(item)
}

// Insert places item at index i.
func (l *Locked[T]) Insert(i int, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.Insert(i, item)
}

// Remove deletes the first item equal to item.
func (l *Locked[T]) Remove(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.Remove(item)
}

// RemoveAt deletes the item at index i.
func (l *Locked[T]) RemoveAt(i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.RemoveAt(i)
}

// Pop removes and returns the last item.
func (l *Locked[T]) Pop() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seq.Pop()
}

// Values returns a copy of the entries.
func (l *Locked[T]) Values() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.seq.Values()
}

// Clear drops every entry.
func (l *Locked[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq.Clear()
}

// Destroy releases the guarded Sequence's backing array.
func (l *Locked[T]) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq.Destroy()
}

// Do runs fn with exclusive access, for compound operations such as
// scan-then-mutate that must not interleave with other callers.
func (l *Locked[T]) Do(fn func(s *Sequence[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(l.seq)
}
