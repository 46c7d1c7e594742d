package player

// TrackState is the wire shape of one widget: the track, its state and
// display strings for the progress bar.
type TrackState struct {
	Track
	State
	Status          Status  `json:"status"`
	Elapsed         string  `json:"elapsed"`
	Remaining       string  `json:"remaining"`
	ProgressPercent float64 `json:"progress_percent"`
}

func NewTrackState(t Track, s State) TrackState {
	progress := 0.0
	if s.TotalDuration > 0 {
		progress = float64(s.CurrentTime) / float64(s.TotalDuration) * 100
	}
	return TrackState{
		Track:           t,
		State:           s,
		Status:          s.Status(),
		Elapsed:         FormatTime(s.CurrentTime),
		Remaining:       FormatTime(s.TotalDuration - s.CurrentTime),
		ProgressPercent: progress,
	}
}
