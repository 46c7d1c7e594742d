package player

import "time"

// Ticker is the periodic trigger that drives a playing widget.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. Tests swap in a manual implementation.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type systemClock struct{}

// SystemClock is backed by time.NewTicker.
func SystemClock() Clock { return systemClock{} }

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.t.C }
func (s *systemTicker) Stop()               { s.t.Stop() }
