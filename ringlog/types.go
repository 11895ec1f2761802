// SPDX-License-Identifier: MIT

package ringlog

import (
	"errors"

	"github.com/katalvlaran/lvring/sequence"
)

// Sentinel errors for ring log construction and observer management.
var (
	// ErrBadCapacity indicates a capacity below one line.
	ErrBadCapacity = errors.New("ringlog: capacity must be > 0")

	// ErrBadLineSize indicates a line size that cannot hold one byte plus the
	// terminator.
	ErrBadLineSize = errors.New("ringlog: line size must be > 1")

	// ErrObserverNotFound indicates RemoveObserver was given an unknown id.
	ErrObserverNotFound = errors.New("ringlog: observer not found")

	// ErrInvalidHandle is returned for a nil or destroyed RingLog. It is the
	// sequence sentinel so callers can match either package's value.
	ErrInvalidHandle = sequence.ErrInvalidHandle
)

// InvalidSize is returned by Size and Capacity for a nil or destroyed log.
const InvalidSize = sequence.InvalidSize

// Phase is the retention state of a RingLog.
type Phase uint8

const (
	// Filling: fewer than capacity lines have been appended since creation or Clear.
	Filling Phase = iota
	// Wrapped: at least capacity lines have been appended; appends overwrite the oldest.
	Wrapped
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Wrapped {
		return "Wrapped"
	}

	return "Filling"
}

// Line is one fixed-width arena slot. A *Line is a stable slot address: the
// same pointer is handed out again when its slot is overwritten, and its
// contents change with it. Copy with String or Bytes to keep a value.
type Line struct {
	slot int
	buf  []byte // arena view of length lineSize
	n    int    // payload length; buf[n] == 0
}

// Bytes returns the payload as a view into the arena (no terminator). The
// view's capacity ends at the payload, so appending to it never writes into
// the arena.
func (l *Line) Bytes() []byte {
	if l == nil {
		return nil
	}

	return l.buf[:l.n:l.n]
}

// String returns a copy of the payload.
func (l *Line) String() string {
	if l == nil {
		return ""
	}

	return string(l.buf[:l.n])
}

// Slot returns the arena slot index backing this line.
func (l *Line) Slot() int {
	if l == nil {
		return -1
	}

	return l.slot
}

// Len returns the payload length in bytes.
func (l *Line) Len() int {
	if l == nil {
		return 0
	}

	return l.n
}

// Observer is invoked synchronously after every append.
type Observer func(log *RingLog, line *Line)

// ObserverID identifies a registered Observer. Zero is never issued.
type ObserverID uint64

type observer struct {
	id ObserverID
	fn Observer
}

// sameObserver matches registry entries by id.
func sameObserver(a, b *observer) bool { return a.id == b.id }
