package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// SeekStep is how far SeekBack and SeekForward move the playhead, in seconds.
	SeekStep = 10
	// DefaultVolume is the volume a freshly mounted widget starts at.
	DefaultVolume = 75
	MaxVolume     = 100
)

type Status string

const (
	StatusStopped Status = "stopped"
	StatusPlaying Status = "playing"
	StatusPaused  Status = "paused"
)

// State is the playback state of one widget.
type State struct {
	IsPlaying     bool `json:"is_playing"`
	CurrentTime   int  `json:"current_time_seconds"`
	Volume        int  `json:"volume_percent"`
	TotalDuration int  `json:"total_duration_seconds"`
}

// NewState returns a stopped state for a track of the given length.
func NewState(totalSeconds int) State {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return State{Volume: DefaultVolume, TotalDuration: totalSeconds}
}

// Status derives the machine state. A paused widget sitting at zero is
// indistinguishable from a stopped one and reports stopped.
func (s State) Status() Status {
	switch {
	case s.IsPlaying:
		return StatusPlaying
	case s.CurrentTime == 0:
		return StatusStopped
	default:
		return StatusPaused
	}
}

type ActionKind int

const (
	ActionTogglePlay ActionKind = iota
	ActionTick
	ActionSeekBack
	ActionSeekForward
	ActionSetVolume
)

func (k ActionKind) String() string {
	switch k {
	case ActionTogglePlay:
		return "toggle_play"
	case ActionTick:
		return "tick"
	case ActionSeekBack:
		return "seek_back"
	case ActionSeekForward:
		return "seek_forward"
	case ActionSetVolume:
		return "set_volume"
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is one input to Reduce. Value is only read by ActionSetVolume.
type Action struct {
	Kind  ActionKind
	Value int
}

func TogglePlay() Action     { return Action{Kind: ActionTogglePlay} }
func Tick() Action           { return Action{Kind: ActionTick} }
func SeekBack() Action       { return Action{Kind: ActionSeekBack} }
func SeekForward() Action    { return Action{Kind: ActionSeekForward} }
func SetVolume(v int) Action { return Action{Kind: ActionSetVolume, Value: v} }

// Reduce applies a to s and returns the next state. It never mutates s.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActionTogglePlay:
		s.IsPlaying = !s.IsPlaying
	case ActionTick:
		if !s.IsPlaying {
			return s
		}
		s.CurrentTime++
		// reaching the end rewinds and stops instead of parking at the last second
		if s.CurrentTime >= s.TotalDuration {
			s.IsPlaying = false
			s.CurrentTime = 0
		}
	case ActionSeekBack:
		s.CurrentTime = clamp(s.CurrentTime-SeekStep, 0, s.TotalDuration)
	case ActionSeekForward:
		s.CurrentTime = clamp(s.CurrentTime+SeekStep, 0, s.TotalDuration)
	case ActionSetVolume:
		s.Volume = clamp(a.Value, 0, MaxVolume)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

var ErrMalformedDuration = errors.New("malformed duration")

// ParseDuration parses an "mm:ss" literal into seconds.
func ParseDuration(s string) (int, error) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q has no colon", ErrMalformedDuration, s)
	}
	mins, err := strconv.Atoi(mm)
	if err != nil || mins < 0 {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrMalformedDuration, s)
	}
	secs, err := strconv.Atoi(ss)
	if err != nil || secs < 0 || secs >= 60 || len(ss) != 2 {
		return 0, fmt.Errorf("%w: bad seconds in %q", ErrMalformedDuration, s)
	}
	return mins*60 + secs, nil
}
