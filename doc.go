// Package lvring is a small toolkit of bounded in-memory containers: an
// ordered Sequence that can grow (and optionally shrink) and a fixed-size
// RingLog that keeps the most recent lines of text.
//
// 🚀 What is lvring?
//
//	A dependency-light library plus CLI that brings together:
//		• sequence: generic ordered container with explicit capacity policy
//		• ringlog:  fixed-capacity line log with oldest-first snapshots
//		• logsink:  zerolog output retained in a RingLog
//		• dirwalk:  iterative afero tree walk on a Sequence stack
//		• tasks:    named task registry looked up by custom equality
//		• config:   viper-backed settings (file, LVRING_* env, flags)
//
// ✨ Why choose lvring?
//
//   - Explicit handles: no package-level state beyond sentinels and defaults
//   - Predictable memory: capacity only changes where you allow it
//   - Uniform failures: sentinel errors plus an optional error sink
//   - Stable addresses: RingLog lines live in one arena and never move
//
// Layout:
//
//	sequence/   Sequence[T], Locked[T], error kinds, InvalidSize
//	ringlog/    RingLog, Line, observers, Snapshot
//	logsink/    zerolog Sink over a RingLog
//	dirwalk/    depth- or breadth-first walk with OnVisit/Filter hooks
//	tasks/      Registry of periodic tasks
//	config/     Config, Load, Validate, ToYAML
//	cmd/lvring/ cobra CLI: walk, tasks, config
//
// Quick wraparound picture, capacity 3 after five appends:
//
//	slot:    0     1     2
//	line:   "3"   "4"   "2"
//	                     ↑ cursor (next write)
//	snapshot: "2", "3", "4"
//
//	go get github.com/katalvlaran/lvring
package lvring
