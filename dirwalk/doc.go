// Package dirwalk implements an iterative directory-tree walk over an
// afero.Fs, keeping pending entries on a sequence.Sequence instead of
// recursing. The Sequence is a LIFO stack for DepthFirst and a FIFO queue
// for BreadthFirst.
//
// Key features:
//   - Walk(fs, root, opts...): pre-order, lexical visit order.
//   - WithOrder(BreadthFirst): level-by-level order, lexical within a level.
//   - Hooks: OnVisit with error abort.
//   - Limits: MaxDepth, Filter (skipped entries are counted, never descended).
//   - Cancellation via context.Context, checked before every visit.
//   - Diagnostics: Files, Dirs, Skipped and the stack high-water mark.
//
// Complexity:
//
//   - Time:   O(N log D) where N = entries and D = largest directory
//     (afero.ReadDir sorts each listing).
//   - Memory: O(sum of pending siblings) on the stack, O(widest level)
//     on the queue. BreadthFirst dequeues with RemoveAt(0), an O(P) shift
//     for P pending entries.
//
// Errors:
//
//   - ErrNilFs, ErrEmptyRoot   invalid input.
//   - ErrRootNotFound          root does not exist.
//   - ErrRootNotDir            root is a regular file.
//   - context.Canceled / context.DeadlineExceeded.
//   - any error returned by OnVisit, or by reading a directory (wrapped).
package dirwalk
