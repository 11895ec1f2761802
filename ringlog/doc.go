// Package ringlog implements RingLog, a fixed-capacity, overwrite-oldest log
// of short text lines with chronological reconstruction and append observers.
//
// Storage:
//
//	A RingLog owns one flat arena of capacity*lineSize bytes split into
//	fixed-width slots. Each slot is described by a *Line whose address is
//	stable for the life of the log. A non-growable sequence.Sequence[*Line]
//	records which slot sits at each index position.
//
// Phases:
//
//	Filling  total appends < capacity; index positions [0,total) are live.
//	Wrapped  total appends >= capacity; the oldest line sits at the write
//	         cursor. Filling→Wrapped happens exactly when the capacity-th
//	         append completes. Only Clear returns the log to Filling.
//
// Snapshot order:
//
//	Filling: [0,total). Wrapped: [cursor,capacity) then [0,cursor).
//	Either way the result is oldest first over at most capacity lines.
//
// Observers:
//
//	AddObserver registers a callback run synchronously inside every append,
//	in registration order, with the log and the *Line just written. An
//	observer must not append to, clear or destroy the log it observes.
//
// Concurrency:
//
//	RingLog is not synchronized. Use an external mutex (or zerolog.SyncWriter
//	when the log is a logger's io.Writer) when several goroutines append.
//
// Complexity:
//
//   - Append: O(lineSize + observers).
//   - Snapshot: O(capacity).
//   - Memory: capacity*lineSize bytes plus one *Line per slot.
package ringlog
