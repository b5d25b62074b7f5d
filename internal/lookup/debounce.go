package lookup

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mrlokans/interlinear/internal/entities"
)

// DefaultDebounceWindow sits inside the 300-500ms range that keeps drag
// selections responsive without resolving every intermediate state.
const DefaultDebounceWindow = 400 * time.Millisecond

// ErrSuperseded is returned to a waiting call when a newer selection arrives
// before its debounce window elapses.
var ErrSuperseded = errors.New("selection superseded")

// Debouncer delays resolution of a stream of selections and drops all but the
// latest. Only the wait is cancellable; a started resolution always completes.
type Debouncer struct {
	window  time.Duration
	resolve func(*entities.Verse, Range) (Match, bool)

	mu      sync.Mutex
	seq     uint64
	pending chan struct{}
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window, resolve: Resolve}
}

// Window returns the configured debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Resolve waits for the debounce window, then resolves the selection. It
// returns ErrSuperseded if another call arrived meanwhile, or the context error
// if ctx was cancelled first.
func (d *Debouncer) Resolve(ctx context.Context, verse *entities.Verse, r Range) (Match, bool, error) {
	seq, superseded := d.enter()

	timer := time.NewTimer(d.window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		d.leave(seq)
		return Match{}, false, ctx.Err()
	case <-superseded:
		return Match{}, false, ErrSuperseded
	case <-timer.C:
	}

	if !d.leave(seq) {
		return Match{}, false, ErrSuperseded
	}
	m, ok := d.resolve(verse, r)
	return m, ok, nil
}

func (d *Debouncer) enter() (uint64, <-chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		close(d.pending)
	}
	d.seq++
	d.pending = make(chan struct{})
	return d.seq, d.pending
}

// leave clears the pending slot if seq still owns it and reports whether it did.
func (d *Debouncer) leave(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.seq != seq {
		return false
	}
	d.pending = nil
	return true
}

// DebounceGroup keeps one Debouncer per selection stream, e.g. per client
// view. A stream is tracked only while it has selections in flight.
type DebounceGroup struct {
	window time.Duration

	mu      sync.Mutex
	streams map[string]*stream
}

type stream struct {
	debouncer *Debouncer
	inFlight  int
}

func NewDebounceGroup(window time.Duration) *DebounceGroup {
	return &DebounceGroup{
		window:  window,
		streams: make(map[string]*stream),
	}
}

// Resolve debounces the selection within the stream named key. The stream is
// dropped once its last in-flight selection returns.
func (g *DebounceGroup) Resolve(ctx context.Context, key string, verse *entities.Verse, r Range) (Match, bool, error) {
	d := g.acquire(key)
	defer g.release(key)
	return d.Resolve(ctx, verse, r)
}

func (g *DebounceGroup) acquire(key string) *Debouncer {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.streams[key]
	if !ok {
		s = &stream{debouncer: NewDebouncer(g.window)}
		g.streams[key] = s
	}
	s.inFlight++
	return s.debouncer
}

func (g *DebounceGroup) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.streams[key]
	if !ok {
		return
	}
	s.inFlight--
	if s.inFlight <= 0 {
		delete(g.streams, key)
	}
}

// Len returns the number of tracked streams.
func (g *DebounceGroup) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.streams)
}
