package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvring/sequence"
)

var (
	// ErrEmptyName is returned when a task name is empty.
	ErrEmptyName = errors.New("tasks: name is empty")

	// ErrNilFunc is returned when a task has no function.
	ErrNilFunc = errors.New("tasks: func is nil")

	// ErrDuplicate is returned when a name is already registered.
	ErrDuplicate = errors.New("tasks: name already registered")

	// ErrNotFound is returned when no task has the given name.
	ErrNotFound = errors.New("tasks: not found")
)

// Func is the body of a task.
type Func func(ctx context.Context) error

// Task is one registry entry.
type Task struct {
	Name     string
	Interval time.Duration
	Fn       Func

	Runs      int
	LastRun   time.Time
	LastRunID string
	LastErr   error
}

// sameName matches tasks by Name rather than by pointer.
func sameName(a, b *Task) bool { return a.Name == b.Name }

// Option configures a Registry.
type Option func(r *Registry)

// WithLogger sets the logger used by Invoke. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithCapacity sets the initial registry capacity.
func WithCapacity(n int) Option {
	return func(r *Registry) { r.capacity = n }
}

// WithSequenceOptions appends options for the backing Sequence. They are
// applied after WithCapacity.
func WithSequenceOptions(opts ...sequence.Option) Option {
	return func(r *Registry) { r.seqOpts = append(r.seqOpts, opts...) }
}

// WithClock overrides time.Now for LastRun stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// Registry is an ordered, name-unique set of tasks. It is not synchronized;
// RunAll is the only method that runs tasks concurrently.
type Registry struct {
	tasks    *sequence.Sequence[*Task]
	log      zerolog.Logger
	capacity int
	seqOpts  []sequence.Option
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.tasks = sequence.New[*Task](append([]sequence.Option{sequence.WithCapacity(r.capacity)}, r.seqOpts...)...)

	return r
}

// Register appends a task. Names are unique.
func (r *Registry) Register(name string, interval time.Duration, fn Func) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilFunc
	}
	if _, err := r.index(name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	return r.tasks.Add(&Task{Name: name, Interval: interval, Fn: fn})
}

// Lookup returns the task registered under name.
func (r *Registry) Lookup(name string) (*Task, error) {
	i, err := r.index(name)
	if err != nil {
		return nil, err
	}

	return r.tasks.Get(i)
}

// Unregister removes the task registered under name, keeping the order of
// the remaining tasks.
func (r *Registry) Unregister(name string) error {
	i, err := r.index(name)
	if err != nil {
		return err
	}
	_, err = r.tasks.RemoveAt(i)

	return err
}

// Names returns task names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.tasks.Size())
	r.tasks.Each(func(_ int, t *Task) bool {
		names = append(names, t.Name)
		return true
	})

	return names
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int { return r.tasks.Size() }

// Invoke runs the named task once and records Runs, LastRun, LastRunID and
// LastErr. Each run gets a fresh id, logged as "run".
func (r *Registry) Invoke(ctx context.Context, name string) error {
	t, err := r.Lookup(name)
	if err != nil {
		return err
	}

	return r.run(ctx, t)
}

// RunAll invokes every registered task once, concurrently, and waits for
// all of them. The first failure cancels the context passed to the rest and
// is returned. Tasks must not register or unregister during RunAll.
func (r *Registry) RunAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	r.tasks.Each(func(_ int, t *Task) bool {
		g.Go(func() error { return r.run(gctx, t) })
		return true
	})

	return g.Wait()
}

func (r *Registry) run(ctx context.Context, t *Task) error {
	id := uuid.New().String()
	start := r.now()
	err := t.Fn(ctx)
	t.Runs++
	t.LastRun = start
	t.LastRunID = id
	t.LastErr = err

	if err != nil {
		r.log.Warn().Str("task", t.Name).Str("run", id).Int("runs", t.Runs).Err(err).Msg("task failed")

		return fmt.Errorf("tasks: %s: %w", t.Name, err)
	}
	r.log.Debug().Str("task", t.Name).Str("run", id).Int("runs", t.Runs).Msg("task ran")

	return nil
}

func (r *Registry) index(name string) (int, error) {
	i, err := r.tasks.IndexOf(&Task{Name: name}, sameName)
	if err != nil {
		return sequence.NotFound, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return i, nil
}
