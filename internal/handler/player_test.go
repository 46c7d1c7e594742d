package handler

import (
	"net/http"
	"testing"

	"github.com/aarushimanot/ui-mindmirror/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerControls(t *testing.T) {
	e := newTestEnv(t)
	token := e.signupAndLogin(t)

	rec, env := e.do(t, http.MethodGet, "/api/v1/players/breathing", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[player.TrackState](t, env.Data)
	assert.Equal(t, player.StatusStopped, s.Status)
	assert.Equal(t, 300, s.TotalDuration)
	assert.Equal(t, player.DefaultVolume, s.Volume)
	assert.Equal(t, "5:00", s.Remaining)

	_, env = e.do(t, http.MethodPost, "/api/v1/players/breathing/seek-forward", token, nil)
	s = decode[player.TrackState](t, env.Data)
	assert.Equal(t, 10, s.CurrentTime)
	assert.Equal(t, "0:10", s.Elapsed)

	e.do(t, http.MethodPost, "/api/v1/players/breathing/seek-back", token, nil)
	_, env = e.do(t, http.MethodPost, "/api/v1/players/breathing/seek-back", token, nil)
	assert.Equal(t, 0, decode[player.TrackState](t, env.Data).CurrentTime, "seek clamps at zero")

	_, env = e.do(t, http.MethodPost, "/api/v1/players/breathing/toggle", token, nil)
	s = decode[player.TrackState](t, env.Data)
	assert.True(t, s.IsPlaying)
	assert.Equal(t, player.StatusPlaying, s.Status)

	_, env = e.do(t, http.MethodPut, "/api/v1/players/breathing/volume", token, map[string]int{"volume": 150})
	assert.Equal(t, player.MaxVolume, decode[player.TrackState](t, env.Data).Volume)
	_, env = e.do(t, http.MethodPut, "/api/v1/players/breathing/volume", token, map[string]int{"volume": 0})
	assert.Equal(t, 0, decode[player.TrackState](t, env.Data).Volume)

	rec, _ = e.do(t, http.MethodPut, "/api/v1/players/breathing/volume", token, map[string]int{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerListAndClose(t *testing.T) {
	e := newTestEnv(t)
	token := e.signupAndLogin(t)

	rec, env := e.do(t, http.MethodGet, "/api/v1/players", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, env.Meta.Total)
	assert.Zero(t, e.h.Players.Mounted(), "listing mounts nothing")

	e.do(t, http.MethodPost, "/api/v1/players/nature/toggle", token, nil)
	_, env = e.do(t, http.MethodGet, "/api/v1/players", token, nil)
	states := decode[[]player.TrackState](t, env.Data)
	require.Len(t, states, 3)
	assert.True(t, states[0].IsPlaying)
	assert.False(t, states[1].IsPlaying)

	rec, _ = e.do(t, http.MethodDelete, "/api/v1/players/nature", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, e.h.Players.Mounted())

	_, env = e.do(t, http.MethodGet, "/api/v1/players/nature", token, nil)
	assert.False(t, decode[player.TrackState](t, env.Data).IsPlaying, "remounting starts fresh")
}

func TestPlayerUnknownTrack(t *testing.T) {
	e := newTestEnv(t)
	token := e.signupAndLogin(t)

	rec, _ := e.do(t, http.MethodPost, "/api/v1/players/rain/toggle", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = e.do(t, http.MethodDelete, "/api/v1/players/rain", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlayerAfterShutdown(t *testing.T) {
	e := newTestEnv(t)
	token := e.signupAndLogin(t)
	e.h.Players.Shutdown()

	rec, env := e.do(t, http.MethodPost, "/api/v1/players/ocean/toggle", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", env.Error.Code)
}
