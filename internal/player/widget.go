package player

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTickInterval is the nominal once-per-second playback tick.
const DefaultTickInterval = time.Second

// tickLoop is the goroutine that exists only while a widget is playing.
type tickLoop struct {
	stop chan struct{}
	done chan struct{}
}

// Widget is one audio player instance. All methods are safe for concurrent use.
type Widget struct {
	track    Track
	clock    Clock
	interval time.Duration
	log      *zap.Logger

	mu     sync.Mutex
	state  State
	loop   *tickLoop
	closed bool
	starts int
}

type Option func(*Widget)

func WithClock(c Clock) Option {
	return func(w *Widget) { w.clock = c }
}

func WithTickInterval(d time.Duration) Option {
	return func(w *Widget) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(w *Widget) { w.log = l }
}

// NewWidget mounts a stopped widget for the track.
func NewWidget(track Track, opts ...Option) *Widget {
	w := &Widget{
		track:    track,
		clock:    SystemClock(),
		interval: DefaultTickInterval,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.state = NewState(track.Seconds)
	return w
}

func (w *Widget) Track() Track { return w.track }

// Snapshot returns a copy of the current state.
func (w *Widget) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// TickSourcesStarted reports how many tick loops this widget has ever started.
func (w *Widget) TickSourcesStarted() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.starts
}

func (w *Widget) TogglePlay() State    { return w.dispatch(TogglePlay()) }
func (w *Widget) SeekBack() State      { return w.dispatch(SeekBack()) }
func (w *Widget) SeekForward() State   { return w.dispatch(SeekForward()) }
func (w *Widget) SetVolume(v int) State { return w.dispatch(SetVolume(v)) }

// dispatch reduces a into the state and reconciles the tick loop with the
// resulting playing flag. A loop being torn down is waited for after the
// lock is released, since it may itself be blocked on the lock.
func (w *Widget) dispatch(a Action) State {
	w.mu.Lock()
	if w.closed {
		s := w.state
		w.mu.Unlock()
		return s
	}
	w.state = Reduce(w.state, a)
	var stale *tickLoop
	switch {
	case w.state.IsPlaying && w.loop == nil:
		w.startLocked()
	case !w.state.IsPlaying && w.loop != nil:
		stale = w.detachLocked()
	}
	s := w.state
	w.mu.Unlock()

	if stale != nil {
		<-stale.done
	}
	return s
}

// Close stops playback and releases the tick loop. The widget is unusable afterwards.
func (w *Widget) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.state.IsPlaying = false
	stale := w.detachLocked()
	w.mu.Unlock()

	if stale != nil {
		<-stale.done
	}
}

func (w *Widget) startLocked() {
	l := &tickLoop{stop: make(chan struct{}), done: make(chan struct{})}
	w.loop = l
	w.starts++
	t := w.clock.NewTicker(w.interval)
	w.log.Debug("tick source started", zap.String("track", w.track.ID))
	go w.run(l, t)
}

func (w *Widget) detachLocked() *tickLoop {
	l := w.loop
	if l == nil {
		return nil
	}
	w.loop = nil
	close(l.stop)
	return l
}

func (w *Widget) run(l *tickLoop, t Ticker) {
	defer close(l.done)
	defer t.Stop()
	for {
		select {
		case <-l.stop:
			w.log.Debug("tick source stopped", zap.String("track", w.track.ID))
			return
		case <-t.C():
			if !w.tick(l) {
				return
			}
		}
	}
}

// tick applies one tick if l is still the live loop. It reports whether the
// loop should keep running.
func (w *Widget) tick(l *tickLoop) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.loop != l {
		return false
	}
	w.state = Reduce(w.state, Tick())
	if !w.state.IsPlaying {
		// completed: the loop retires itself, nobody waits on it
		w.loop = nil
		w.log.Debug("playback completed", zap.String("track", w.track.ID))
		return false
	}
	return true
}
