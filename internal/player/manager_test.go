package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog(zap.NewNop())

	tracks := c.Tracks()
	require.Len(t, tracks, 3)
	assert.Equal(t, "nature", tracks[0].ID)
	assert.Equal(t, 930, tracks[0].Seconds)
	assert.Equal(t, 300, tracks[1].Seconds)
	assert.Equal(t, 1200, tracks[2].Seconds)

	_, err := c.Lookup("jazz")
	assert.ErrorIs(t, err, ErrUnknownTrack)
}

func TestCatalogFallsBackOnMalformedDuration(t *testing.T) {
	c := NewCatalog(nil, Track{ID: "broken", Duration: "1530"})

	tr, err := c.Lookup("broken")
	require.NoError(t, err)
	assert.Equal(t, FallbackDuration, tr.Duration)
	assert.Equal(t, 300, tr.Seconds)
}

func TestManagerWidgetsAreIndependent(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := &manualClock{}
	m := NewManager(DefaultCatalog(nil), clk, 0, nil)
	defer m.Shutdown()

	a, err := m.Open("alice", "ocean")
	require.NoError(t, err)
	b, err := m.Open("bob", "ocean")
	require.NoError(t, err)
	require.NotSame(t, a, b)

	again, err := m.Open("alice", "ocean")
	require.NoError(t, err)
	assert.Same(t, a, again)

	a.SeekForward()
	a.TogglePlay()
	assert.Equal(t, 0, b.Snapshot().CurrentTime)
	assert.False(t, b.Snapshot().IsPlaying)
	assert.Equal(t, 2, m.Mounted())
}

func TestManagerSnapshotDoesNotMount(t *testing.T) {
	m := NewManager(DefaultCatalog(nil), &manualClock{}, 0, nil)
	defer m.Shutdown()

	states := m.Snapshot("carol")
	require.Len(t, states, 3)
	for _, s := range states {
		assert.Equal(t, StatusStopped, s.Status)
		assert.Equal(t, "0:00", s.Elapsed)
		assert.Equal(t, s.Duration, s.Remaining)
	}
	assert.Zero(t, m.Mounted())
}

func TestManagerCloseUserStopsPlayback(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := &manualClock{}
	m := NewManager(DefaultCatalog(nil), clk, 0, nil)
	defer m.Shutdown()

	for _, id := range []string{"nature", "breathing", "ocean"} {
		w, err := m.Open("dave", id)
		require.NoError(t, err)
		w.TogglePlay()
	}
	require.Equal(t, 3, clk.running())

	m.CloseUser("dave")
	assert.Zero(t, clk.running())
	assert.Zero(t, m.Mounted())
}

func TestManagerCloseSingleTrack(t *testing.T) {
	defer goleak.VerifyNone(t)
	clk := &manualClock{}
	m := NewManager(DefaultCatalog(nil), clk, 0, nil)
	defer m.Shutdown()

	w, err := m.Open("erin", "breathing")
	require.NoError(t, err)
	w.TogglePlay()
	w.SeekForward()

	m.Close("erin", "breathing")
	m.Close("erin", "breathing")
	assert.Zero(t, clk.running())

	fresh, err := m.Open("erin", "breathing")
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Snapshot().CurrentTime, "remount starts from scratch")
}

func TestManagerShutdownRefusesOpen(t *testing.T) {
	defer goleak.VerifyNone(t)
	m := NewManager(DefaultCatalog(nil), &manualClock{}, 0, nil)
	w, err := m.Open("frank", "nature")
	require.NoError(t, err)
	w.TogglePlay()

	m.Shutdown()

	_, err = m.Open("frank", "nature")
	assert.ErrorIs(t, err, ErrShutdown)
	assert.False(t, w.Snapshot().IsPlaying)
}
