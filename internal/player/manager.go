package player

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrShutdown = errors.New("player manager is shut down")

// Manager owns the mounted widgets of every user. Widgets are created on
// first use and torn down explicitly; a user's widgets never share state.
type Manager struct {
	catalog  *Catalog
	clock    Clock
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	widgets map[string]map[string]*Widget
	closed  bool
}

func NewManager(catalog *Catalog, clock Clock, interval time.Duration, log *zap.Logger) *Manager {
	if clock == nil {
		clock = SystemClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		catalog:  catalog,
		clock:    clock,
		interval: interval,
		log:      log,
		widgets:  make(map[string]map[string]*Widget),
	}
}

func (m *Manager) Catalog() *Catalog { return m.catalog }

// Open returns the user's widget for trackID, mounting it if needed.
func (m *Manager) Open(userID, trackID string) (*Widget, error) {
	track, err := m.catalog.Lookup(trackID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrShutdown
	}
	mine, ok := m.widgets[userID]
	if !ok {
		mine = make(map[string]*Widget)
		m.widgets[userID] = mine
	}
	if w, ok := mine[trackID]; ok {
		return w, nil
	}
	w := NewWidget(track,
		WithClock(m.clock),
		WithTickInterval(m.interval),
		WithLogger(m.log.With(zap.String("user_id", userID))),
	)
	mine[trackID] = w
	return w, nil
}

// Snapshot returns the user's state for every catalogue track without
// mounting anything; unmounted tracks report their initial state.
func (m *Manager) Snapshot(userID string) []TrackState {
	m.mu.Lock()
	mine := m.widgets[userID]
	live := make(map[string]*Widget, len(mine))
	for id, w := range mine {
		live[id] = w
	}
	m.mu.Unlock()

	tracks := m.catalog.Tracks()
	out := make([]TrackState, 0, len(tracks))
	for _, t := range tracks {
		s := NewState(t.Seconds)
		if w, ok := live[t.ID]; ok {
			s = w.Snapshot()
		}
		out = append(out, NewTrackState(t, s))
	}
	return out
}

// Close unmounts one widget. Closing an unmounted track is a no-op.
func (m *Manager) Close(userID, trackID string) {
	m.mu.Lock()
	w := m.widgets[userID][trackID]
	if w != nil {
		delete(m.widgets[userID], trackID)
		if len(m.widgets[userID]) == 0 {
			delete(m.widgets, userID)
		}
	}
	m.mu.Unlock()

	if w != nil {
		w.Close()
	}
}

// CloseUser unmounts every widget of a user.
func (m *Manager) CloseUser(userID string) {
	m.mu.Lock()
	mine := m.widgets[userID]
	delete(m.widgets, userID)
	m.mu.Unlock()

	for _, w := range mine {
		w.Close()
	}
}

// Shutdown unmounts everything and refuses further Opens.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	all := m.widgets
	m.widgets = make(map[string]map[string]*Widget)
	m.mu.Unlock()

	n := 0
	for _, mine := range all {
		for _, w := range mine {
			w.Close()
			n++
		}
	}
	m.log.Sugar().Infow("player manager shut down", "widgets_closed", n)
}

// Mounted reports how many widgets are live across all users.
func (m *Manager) Mounted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, mine := range m.widgets {
		n += len(mine)
	}
	return n
}
