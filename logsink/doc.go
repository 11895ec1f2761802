// Package logsink builds zerolog loggers whose output is retained in a
// ringlog.RingLog, so the most recent log lines can be displayed or exported
// on demand.
//
// A Sink owns the mutex that serializes the ring: the logger writes through
// it and Lines, Tail and Dump read under it. Observers registered through
// Observe run inside that lock and must not log through the same Sink.
package logsink
