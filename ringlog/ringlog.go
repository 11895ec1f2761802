// SPDX-License-Identifier: MIT

package ringlog

import (
	"bytes"

	"github.com/katalvlaran/lvring/sequence"
)

// RingLog retains the most recent capacity lines, each truncated to
// lineSize-1 bytes. Construct with New; the zero value is not usable.
type RingLog struct {
	capacity int
	lineSize int

	arena []byte
	slots []Line

	cursor int    // next slot to write, 0 <= cursor < capacity
	total  uint64 // appends since creation or Clear

	index     *sequence.Sequence[*Line]
	observers *sequence.Sequence[*observer]
	nextID    ObserverID

	destroyed bool
}

// New allocates a RingLog of capacity lines of at most lineSize bytes each,
// terminator included.
//
// Implementation:
//   - Stage 1: Validate capacity (>0) and lineSize (>1).
//   - Stage 2: Allocate the capacity*lineSize arena and carve one Line per slot.
//   - Stage 3: Create the non-growable slot index and the observer registry.
//
// Errors:
//   - ErrBadCapacity, ErrBadLineSize.
//
// Complexity: O(capacity*lineSize).
func New(capacity, lineSize int) (*RingLog, error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	if lineSize < 2 {
		return nil, ErrBadLineSize
	}

	r := &RingLog{
		capacity:  capacity,
		lineSize:  lineSize,
		arena:     make([]byte, capacity*lineSize),
		slots:     make([]Line, capacity),
		index:     sequence.New[*Line](sequence.WithFixedCapacity(capacity)),
		observers: sequence.New[*observer](sequence.WithCapacity(2)),
	}
	var i int
	for i = 0; i < capacity; i++ {
		r.slots[i] = Line{slot: i, buf: r.arena[i*lineSize : (i+1)*lineSize : (i+1)*lineSize]}
	}

	return r, nil
}

func (r *RingLog) valid() bool { return r != nil && !r.destroyed }

// Capacity returns the line capacity, or InvalidSize for a nil or destroyed log.
func (r *RingLog) Capacity() int {
	if !r.valid() {
		return InvalidSize
	}

	return r.capacity
}

// LineSize returns the slot width in bytes (terminator included).
func (r *RingLog) LineSize() int {
	if !r.valid() {
		return InvalidSize
	}

	return r.lineSize
}

// Size returns min(total appends, capacity), or InvalidSize for a nil or
// destroyed log.
func (r *RingLog) Size() int {
	if !r.valid() {
		return InvalidSize
	}
	if r.total < uint64(r.capacity) {
		return int(r.total)
	}

	return r.capacity
}

// Total returns the number of appends since creation or the last Clear.
func (r *RingLog) Total() uint64 {
	if !r.valid() {
		return 0
	}

	return r.total
}

// Phase reports Filling or Wrapped.
func (r *RingLog) Phase() Phase {
	if !r.valid() || r.total < uint64(r.capacity) {
		return Filling
	}

	return Wrapped
}

// Append stores s in the slot at the write cursor, truncated to lineSize-1
// bytes, then notifies observers. A nil or destroyed log ignores the call.
// Complexity: O(lineSize + observers).
func (r *RingLog) Append(s string) {
	if !r.valid() {
		return
	}
	ln := &r.slots[r.cursor]
	ln.n = copy(ln.buf[:r.lineSize-1], s)
	r.commit(ln)
}

// AppendBytes is Append for a byte slice. A nil p is ignored; an empty
// non-nil p appends an empty line. p is copied and may be reused.
func (r *RingLog) AppendBytes(p []byte) {
	if !r.valid() || p == nil {
		return
	}
	ln := &r.slots[r.cursor]
	ln.n = copy(ln.buf[:r.lineSize-1], p)
	r.commit(ln)
}

// commit terminates ln, records it at the cursor position, advances the
// cursor and runs observers.
func (r *RingLog) commit(ln *Line) {
	ln.buf[ln.n] = 0

	// The index is fixed at capacity and the cursor is always within it, so
	// neither call can fail.
	if r.total < uint64(r.capacity) {
		_ = r.index.Add(ln)
	} else {
		_ = r.index.Set(r.cursor, ln)
	}

	r.cursor = (r.cursor + 1) % r.capacity
	r.total++

	r.observers.Each(func(_ int, o *observer) bool {
		o.fn(r, ln)
		return true
	})
}

// Write implements io.Writer. p is split on '\n'; each non-empty line, with
// a trailing '\r' trimmed, becomes one append. It always consumes all of p.
func (r *RingLog) Write(p []byte) (int, error) {
	if !r.valid() {
		return 0, ErrInvalidHandle
	}
	rest := p
	var (
		line []byte
		i    int
	)
	for len(rest) > 0 {
		if i = bytes.IndexByte(rest, '\n'); i < 0 {
			line, rest = rest, nil
		} else {
			line, rest = rest[:i], rest[i+1:]
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		r.AppendBytes(line)
	}

	return len(p), nil
}

// Snapshot clears out and fills it with the retained lines, oldest first.
//
// Implementation:
//   - Filling: copy index positions [0,total).
//   - Wrapped: copy [cursor,capacity) then [0,cursor).
//
// Any error raised by out (for example sequence.ErrCapacityExceeded on a
// fixed, too-small out) aborts the copy and is returned unchanged.
// Complexity: O(capacity).
func (r *RingLog) Snapshot(out *sequence.Sequence[*Line]) error {
	if !r.valid() {
		return ErrInvalidHandle
	}
	if out.Size() == sequence.InvalidSize {
		return sequence.ErrInvalidHandle
	}
	out.Clear()

	if r.Phase() == Filling {
		return r.index.CopyRange(out, 0, int(r.total))
	}
	if err := r.index.CopyRange(out, r.cursor, r.capacity); err != nil {
		return err
	}

	return r.index.CopyRange(out, 0, r.cursor)
}

// Lines returns copies of the retained lines, oldest first.
func (r *RingLog) Lines() []string {
	if !r.valid() {
		return nil
	}
	out := sequence.New[*Line](sequence.WithFixedCapacity(r.capacity))
	defer out.Destroy()
	if err := r.Snapshot(out); err != nil {
		return nil
	}
	lines := make([]string, 0, out.Size())
	out.Each(func(_ int, ln *Line) bool {
		lines = append(lines, ln.String())
		return true
	})

	return lines
}

// Clear returns the log to the Filling phase with the cursor at slot 0.
// Arena bytes are left in place until overwritten. Observers stay registered.
func (r *RingLog) Clear() {
	if !r.valid() {
		return
	}
	r.cursor = 0
	r.total = 0
	r.index.Clear()
}

// AddObserver registers fn and returns its id. A nil fn or an invalid log
// yields 0 and registers nothing.
func (r *RingLog) AddObserver(fn Observer) ObserverID {
	if !r.valid() || fn == nil {
		return 0
	}
	r.nextID++
	if err := r.observers.Add(&observer{id: r.nextID, fn: fn}); err != nil {
		return 0
	}

	return r.nextID
}

// RemoveObserver deregisters the observer with the given id.
// Returns ErrObserverNotFound for an unknown id.
func (r *RingLog) RemoveObserver(id ObserverID) error {
	if !r.valid() {
		return ErrInvalidHandle
	}
	i, err := r.observers.IndexOf(&observer{id: id}, sameObserver)
	if err != nil {
		return ErrObserverNotFound
	}
	_, err = r.observers.RemoveAt(i)

	return err
}

// ObserverCount returns the number of registered observers.
func (r *RingLog) ObserverCount() int {
	if !r.valid() {
		return 0
	}

	return r.observers.Size()
}

// Destroy releases the arena, the slot index and the observer registry.
// Later calls degrade to their invalid-handle results.
func (r *RingLog) Destroy() {
	if r == nil || r.destroyed {
		return
	}
	r.index.Destroy()
	r.observers.Destroy()
	r.arena = nil
	r.slots = nil
	r.cursor = 0
	r.total = 0
	r.destroyed = true
}
