// Package tasks keeps a named registry of periodic tasks in a
// sequence.Sequence and looks entries up by name with a custom equality.
//
// The registry records what should run and how often; scheduling is left to
// the caller. Invoke runs one task once and records its outcome.
package tasks
