package player

import (
	"errors"

	"go.uber.org/zap"
)

// FallbackDuration is used for tracks whose duration literal does not parse.
const FallbackDuration = "5:00"

var ErrUnknownTrack = errors.New("unknown track")

// Track describes one audio widget on the wellness panel.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Seconds  int    `json:"duration_seconds"`
	Icon     string `json:"icon"`
	Gradient string `json:"gradient"`
}

var defaultTracks = []Track{
	{
		ID:       "nature",
		Title:    "Calming Nature Sounds 🎵",
		Duration: "15:30",
		Icon:     "music",
		Gradient: "bg-gradient-to-r from-emerald-400 to-teal-500 border-emerald-300",
	},
	{
		ID:       "breathing",
		Title:    "Deep Breathing Exercise 🌬️",
		Duration: "5:00",
		Icon:     "wind",
		Gradient: "bg-gradient-to-r from-blue-400 to-cyan-500 border-blue-300",
	},
	{
		ID:       "ocean",
		Title:    "Ocean Waves Meditation 🌊",
		Duration: "20:00",
		Icon:     "waves",
		Gradient: "bg-gradient-to-r from-indigo-400 to-purple-500 border-indigo-300",
	},
}

// Catalog is an ordered, read-only set of tracks.
type Catalog struct {
	tracks []Track
	byID   map[string]Track
}

// NewCatalog resolves each track's duration. Malformed literals fall back
// to FallbackDuration and are logged instead of failing the whole panel.
func NewCatalog(log *zap.Logger, tracks ...Track) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	fallback, _ := ParseDuration(FallbackDuration)
	c := &Catalog{byID: make(map[string]Track, len(tracks))}
	for _, t := range tracks {
		secs, err := ParseDuration(t.Duration)
		if err != nil {
			log.Sugar().Warnw("track duration malformed, using fallback",
				"track", t.ID, "duration", t.Duration, "fallback", FallbackDuration, "err", err)
			t.Duration = FallbackDuration
			secs = fallback
		}
		t.Seconds = secs
		c.tracks = append(c.tracks, t)
		c.byID[t.ID] = t
	}
	return c
}

// DefaultCatalog holds the three wellness audio tracks.
func DefaultCatalog(log *zap.Logger) *Catalog {
	return NewCatalog(log, defaultTracks...)
}

func (c *Catalog) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

func (c *Catalog) Lookup(id string) (Track, error) {
	t, ok := c.byID[id]
	if !ok {
		return Track{}, ErrUnknownTrack
	}
	return t, nil
}
