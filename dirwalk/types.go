package dirwalk

import (
	"context"
	"errors"
	"os"

	"github.com/katalvlaran/lvring/sequence"
)

var (
	// ErrNilFs is returned when Walk receives a nil filesystem.
	ErrNilFs = errors.New("dirwalk: filesystem is nil")

	// ErrEmptyRoot is returned when the root path is empty.
	ErrEmptyRoot = errors.New("dirwalk: root path is empty")

	// ErrRootNotFound indicates the root path does not exist.
	ErrRootNotFound = errors.New("dirwalk: root not found")

	// ErrRootNotDir indicates the root path is not a directory.
	ErrRootNotDir = errors.New("dirwalk: root is not a directory")
)

// DefaultStackCapacity is the initial capacity of the pending-entry stack.
const DefaultStackCapacity = 16

// Entry describes one visited filesystem node.
type Entry struct {
	// Path is the root-joined path of the node.
	Path string
	// Name is the base name.
	Name string
	// Depth is 0 for the root, 1 for its children, and so on.
	Depth int
	// Dir reports whether the node is a directory.
	Dir bool
	// Size is the file size in bytes (0 for directories).
	Size int64
}

// Order selects the traversal discipline.
type Order int

const (
	// DepthFirst visits a directory's subtree before its next sibling.
	DepthFirst Order = iota
	// BreadthFirst visits every entry at depth d before any at depth d+1.
	BreadthFirst
)

// String returns the order name.
func (o Order) String() string {
	if o == BreadthFirst {
		return "BreadthFirst"
	}

	return "DepthFirst"
}

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds configurable parameters for Walk.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for each entry in visit order.
	// Returning an error aborts the walk with that error.
	OnVisit func(e Entry) error

	// MaxDepth, if non-negative, stops descent below the given depth.
	// 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// Filter, if non-nil, is called for each child entry before it is
	// pushed. Return false to skip the entry and its subtree.
	Filter func(e Entry) bool

	// Order is DepthFirst (default) or BreadthFirst.
	Order Order

	// StackCapacity is the initial stack capacity; the stack grows as needed.
	StackCapacity int

	// StackOptions are applied to the stack after StackCapacity, so they may
	// override it, disable growth or install an error sink.
	StackOptions []sequence.Option
}

// DefaultOptions returns Options with a background context, no hooks, no
// depth limit, no filter and DefaultStackCapacity.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxDepth:      -1,
		StackCapacity: DefaultStackCapacity,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(e Entry) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits descent to limit levels below the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilter installs fn as the child filter.
func WithFilter(fn func(e Entry) bool) Option {
	return func(o *Options) { o.Filter = fn }
}

// WithStackCapacity sets the initial stack capacity (n <= 0 is ignored).
func WithStackCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.StackCapacity = n
		}
	}
}

// WithOrder selects DepthFirst or BreadthFirst traversal.
func WithOrder(o Order) Option {
	return func(opts *Options) { opts.Order = o }
}

// WithStackOptions appends sequence options for the traversal stack.
func WithStackOptions(opts ...sequence.Option) Option {
	return func(o *Options) { o.StackOptions = append(o.StackOptions, opts...) }
}

// Result captures the outcome of a walk.
type Result struct {
	// Visited lists entries in visit (pre-order, lexical) order.
	Visited []Entry
	// Files and Dirs count visited entries by type.
	Files, Dirs int
	// Skipped counts entries rejected by Filter.
	Skipped int
	// MaxStack is the largest number of pending entries seen.
	MaxStack int
}

func entryOf(path string, depth int, info os.FileInfo) Entry {
	e := Entry{Path: path, Name: info.Name(), Depth: depth, Dir: info.IsDir()}
	if !e.Dir {
		e.Size = info.Size()
	}

	return e
}
