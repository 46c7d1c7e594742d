package player

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestWidget(t *testing.T, duration string) (*Widget, *manualClock) {
	t.Helper()
	secs, err := ParseDuration(duration)
	require.NoError(t, err)
	clk := &manualClock{}
	w := NewWidget(Track{ID: "test", Duration: duration, Seconds: secs}, WithClock(clk))
	return w, clk
}

func waitFor(t *testing.T, w *Widget, cond func(State) bool) {
	t.Helper()
	require.Eventually(t, func() bool { return cond(w.Snapshot()) }, time.Second, time.Millisecond)
}

func TestWidgetStartsStopped(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, clk := newTestWidget(t, "5:00")
	defer w.Close()

	s := w.Snapshot()
	assert.False(t, s.IsPlaying)
	assert.Equal(t, 0, s.CurrentTime)
	assert.Equal(t, DefaultVolume, s.Volume)
	assert.Equal(t, 300, s.TotalDuration)
	assert.Zero(t, clk.created(), "no tick source before play")
}

func TestWidgetTicksWhilePlaying(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, clk := newTestWidget(t, "5:00")
	defer w.Close()

	w.TogglePlay()
	require.Equal(t, 1, clk.created())

	clk.fire(t)
	clk.fire(t)
	waitFor(t, w, func(s State) bool { return s.CurrentTime == 2 })
	assert.True(t, w.Snapshot().IsPlaying)
}

func TestWidgetPauseStopsTickSource(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, clk := newTestWidget(t, "5:00")
	defer w.Close()

	w.TogglePlay()
	clk.fire(t)
	waitFor(t, w, func(s State) bool { return s.CurrentTime == 1 })

	s := w.TogglePlay()
	assert.False(t, s.IsPlaying)
	assert.Equal(t, 1, s.CurrentTime)
	assert.Zero(t, clk.running(), "pause must stop the ticker before returning")
	assert.Equal(t, StatusPaused, s.Status())
}

func TestWidgetCompletionWrapsAndReleasesTicker(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, clk := newTestWidget(t, "0:03")
	defer w.Close()

	w.TogglePlay()
	clk.fire(t)
	clk.fire(t)
	waitFor(t, w, func(s State) bool { return s.CurrentTime == 2 })

	clk.fire(t)
	waitFor(t, w, func(s State) bool { return !s.IsPlaying })

	s := w.Snapshot()
	assert.Equal(t, 0, s.CurrentTime)
	assert.Equal(t, StatusStopped, s.Status())
	require.Eventually(t, func() bool { return clk.running() == 0 }, time.Second, time.Millisecond)

	// replaying after completion starts a fresh tick source
	w.TogglePlay()
	assert.Equal(t, 2, clk.created())
	assert.Equal(t, 1, clk.running())
}

func TestWidgetToggleTwiceKeepsPosition(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, _ := newTestWidget(t, "5:00")
	defer w.Close()
	w.SeekForward()

	before := w.Snapshot()
	w.TogglePlay()
	after := w.TogglePlay()

	assert.Equal(t, before, after)
}

func TestWidgetRapidTogglesNeverDuplicateTickSources(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, clk := newTestWidget(t, "5:00")
	defer w.Close()

	for i := 0; i < 101; i++ {
		w.TogglePlay()
		assert.LessOrEqual(t, clk.running(), 1)
	}
	assert.True(t, w.Snapshot().IsPlaying)
	assert.Equal(t, 1, clk.running())
	assert.Equal(t, 51, w.TickSourcesStarted())
}

func TestWidgetConcurrentUseKeepsInvariants(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, _ := newTestWidget(t, "0:30")
	defer w.Close()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch (g + i) % 4 {
				case 0:
					w.TogglePlay()
				case 1:
					w.SeekForward()
				case 2:
					w.SeekBack()
				case 3:
					w.SetVolume(i)
				}
			}
		}(g)
	}
	wg.Wait()

	s := w.Snapshot()
	assert.GreaterOrEqual(t, s.CurrentTime, 0)
	assert.LessOrEqual(t, s.CurrentTime, s.TotalDuration)
	assert.GreaterOrEqual(t, s.Volume, 0)
	assert.LessOrEqual(t, s.Volume, 100)
}

func TestWidgetSeekAndVolumeLeavePlaybackAlone(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, clk := newTestWidget(t, "5:00")
	defer w.Close()

	s := w.SeekForward()
	assert.Equal(t, 10, s.CurrentTime)
	assert.False(t, s.IsPlaying)
	assert.Zero(t, clk.created())

	s = w.SetVolume(140)
	assert.Equal(t, 100, s.Volume)
	assert.Zero(t, clk.created())

	w.SeekBack()
	s = w.SeekBack()
	assert.Equal(t, 0, s.CurrentTime)
}

func TestWidgetCloseReleasesEverything(t *testing.T) {
	defer goleak.VerifyNone(t)
	w, clk := newTestWidget(t, "5:00")
	defer w.Close()

	w.TogglePlay()
	clk.fire(t)
	waitFor(t, w, func(s State) bool { return s.CurrentTime == 1 })

	w.Close()
	assert.Zero(t, clk.running())
	assert.False(t, w.Snapshot().IsPlaying)

	// disposed widgets ignore further input
	s := w.TogglePlay()
	assert.False(t, s.IsPlaying)
	assert.Equal(t, 1, clk.created())
	w.Close()
}

func TestWidgetWithSystemClock(t *testing.T) {
	defer goleak.VerifyNone(t)
	w := NewWidget(Track{ID: "fast", Seconds: 1000}, WithTickInterval(time.Millisecond))
	defer w.Close()

	w.TogglePlay()
	waitFor(t, w, func(s State) bool { return s.CurrentTime >= 3 })
	w.TogglePlay()

	paused := w.Snapshot().CurrentTime
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, paused, w.Snapshot().CurrentTime, "no ticks after pause")
}
