package dirwalk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/katalvlaran/lvring/sequence"
)

// walker encapsulates state during a walk.
type walker struct {
	fs    afero.Fs
	opts  Options
	res   *Result
	stack *sequence.Sequence[Entry]
}

// Walk visits root and everything below it, depth first, without recursion.
// Children are pushed in reverse lexical order so they pop in lexical order.
// Returns the partial Result together with the error when aborted.
func Walk(fs afero.Fs, root string, opts ...Option) (*Result, error) {
	// 1. Validate input
	if fs == nil {
		return nil, ErrNilFs
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}

	// 2. Apply options
	wopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		if fn != nil {
			fn(&wopts)
		}
	}

	// 3. Resolve the root
	info, err := fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}

		return nil, fmt.Errorf("dirwalk: stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	// 4. Seed the stack with the root
	w := &walker{
		fs:    fs,
		opts:  wopts,
		res:   &Result{},
		stack: sequence.New[Entry](append([]sequence.Option{sequence.WithCapacity(wopts.StackCapacity)}, wopts.StackOptions...)...),
	}
	defer w.stack.Destroy()
	if err = w.push(entryOf(filepath.Clean(root), 0, info)); err != nil {
		return nil, err
	}

	// 5. Drain
	return w.res, w.run()
}

func (w *walker) push(e Entry) error {
	if err := w.stack.Push(e); err != nil {
		return fmt.Errorf("dirwalk: push %q: %w", e.Path, err)
	}
	if n := w.stack.Size(); n > w.res.MaxStack {
		w.res.MaxStack = n
	}

	return nil
}

func (w *walker) run() error {
	var (
		e   Entry
		err error
	)
	for !w.stack.IsEmpty() {
		// Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if e, err = w.next(); err != nil {
			return fmt.Errorf("dirwalk: take: %w", err)
		}
		if err = w.visit(e); err != nil {
			return err
		}
		if !e.Dir || (w.opts.MaxDepth >= 0 && e.Depth >= w.opts.MaxDepth) {
			continue
		}
		if err = w.expand(e); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) visit(e Entry) error {
	w.res.Visited = append(w.res.Visited, e)
	if e.Dir {
		w.res.Dirs++
	} else {
		w.res.Files++
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(e); err != nil {
			return fmt.Errorf("dirwalk: OnVisit hook for %q: %w", e.Path, err)
		}
	}

	return nil
}

// next takes the newest pending entry (DepthFirst) or the oldest (BreadthFirst).
func (w *walker) next() (Entry, error) {
	if w.opts.Order == BreadthFirst {
		return w.stack.RemoveAt(0)
	}

	return w.stack.Pop()
}

// expand pushes the children of dir so that next yields them in lexical
// order: reversed onto the stack, forward into the queue.
func (w *walker) expand(dir Entry) error {
	infos, err := afero.ReadDir(w.fs, dir.Path)
	if err != nil {
		return fmt.Errorf("dirwalk: read %q: %w", dir.Path, err)
	}

	var (
		i     int
		child Entry
	)
	for k := range infos {
		i = k
		if w.opts.Order == DepthFirst {
			i = len(infos) - 1 - k
		}
		child = entryOf(filepath.Join(dir.Path, infos[i].Name()), dir.Depth+1, infos[i])
		if w.opts.Filter != nil && !w.opts.Filter(child) {
			w.res.Skipped++
			continue
		}
		if err = w.push(child); err != nil {
			return err
		}
	}

	return nil
}
