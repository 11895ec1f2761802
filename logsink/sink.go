package logsink

import (
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvring/ringlog"
	"github.com/katalvlaran/lvring/sequence"
)

// ErrNilRing is returned by New when the ring log is nil or destroyed.
var ErrNilRing = errors.New("logsink: ring log is nil")

// Option configures a Sink.
type Option func(o *options)

type options struct {
	level     zerolog.Level
	out       io.Writer
	console   bool
	timestamp bool
	fields    map[string]string
}

// WithLevel sets the minimum level written to the ring and the secondary output.
func WithLevel(l zerolog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithOutput mirrors every event to w as JSON.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithConsole mirrors every event to w in zerolog's human-readable format.
// The ring itself always stores JSON.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.out = w
		o.console = true
	}
}

// WithTimestamp adds a "time" field to every event.
func WithTimestamp() Option {
	return func(o *options) { o.timestamp = true }
}

// WithField attaches a constant string field to every event.
func WithField(key, value string) Option {
	return func(o *options) {
		if o.fields == nil {
			o.fields = make(map[string]string)
		}
		o.fields[key] = value
	}
}

// Sink is a zerolog destination backed by a RingLog.
type Sink struct {
	mu     sync.Mutex
	ring   *ringlog.RingLog
	logger zerolog.Logger
}

// New wraps ring and builds the logger.
func New(ring *ringlog.RingLog, opts ...Option) (*Sink, error) {
	if ring.Size() == ringlog.InvalidSize {
		return nil, ErrNilRing
	}
	o := options{level: zerolog.InfoLevel}
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&o)
		}
	}

	s := &Sink{ring: ring}
	var w io.Writer = s
	if o.out != nil {
		var mirror io.Writer = o.out
		if o.console {
			mirror = zerolog.ConsoleWriter{Out: o.out, NoColor: true}
		}
		w = zerolog.MultiLevelWriter(s, zerolog.SyncWriter(mirror))
	}

	ctx := zerolog.New(w).Level(o.level).With()
	if o.timestamp {
		ctx = ctx.Timestamp()
	}
	for _, k := range sortedKeys(o.fields) {
		ctx = ctx.Str(k, o.fields[k])
	}
	s.logger = ctx.Logger()

	return s, nil
}

// Logger returns the ring-backed logger.
func (s *Sink) Logger() zerolog.Logger { return s.logger }

// Write appends p to the ring under the sink lock.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ring.Write(p)
}

// Lines returns the retained lines, oldest first.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ring.Lines()
}

// Tail returns at most n of the newest lines, oldest first.
func (s *Sink) Tail(n int) []string {
	lines := s.Lines()
	if n < 0 {
		n = 0
	}
	if n < len(lines) {
		lines = lines[len(lines)-n:]
	}

	return lines
}

// Len returns the number of retained lines.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ring.Size()
}

// Dump writes the retained lines to w, oldest first, one per line.
func (s *Sink) Dump(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Dump(w, s.ring)
}

// Observe registers fn on the ring under the sink lock.
func (s *Sink) Observe(fn ringlog.Observer) ringlog.ObserverID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ring.AddObserver(fn)
}

// Forget removes an observer registered with Observe.
func (s *Sink) Forget(id ringlog.ObserverID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ring.RemoveObserver(id)
}

// Reset clears the ring.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring.Clear()
}

// Dump writes ring's ordered snapshot to w. The caller serializes access to ring.
func Dump(w io.Writer, ring *ringlog.RingLog) error {
	out := sequence.New[*ringlog.Line](sequence.WithCapacity(ring.Capacity()))
	defer out.Destroy()
	if err := ring.Snapshot(out); err != nil {
		return err
	}

	var (
		i   int
		ln  *ringlog.Line
		err error
	)
	for i = 0; i < out.Size(); i++ {
		if ln, err = out.Get(i); err != nil {
			return err
		}
		if _, err = w.Write(append(ln.Bytes(), '\n')); err != nil {
			return err
		}
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
