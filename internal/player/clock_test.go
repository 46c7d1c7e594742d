package player

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// manualClock hands out tickers that only fire when the test says so.
type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

type manualTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (m *manualClock) NewTicker(time.Duration) Ticker {
	t := &manualTicker{c: make(chan time.Time)}
	m.mu.Lock()
	m.tickers = append(m.tickers, t)
	m.mu.Unlock()
	return t
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (m *manualClock) created() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

func (m *manualClock) running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tickers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

func (m *manualClock) latest(t *testing.T) *manualTicker {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.tickers, "no ticker was created")
	return m.tickers[len(m.tickers)-1]
}

// fire delivers one tick to the most recent ticker and blocks until the
// widget's loop has received it.
func (m *manualClock) fire(t *testing.T) {
	t.Helper()
	tk := m.latest(t)
	select {
	case tk.c <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("tick was not received")
	}
}
