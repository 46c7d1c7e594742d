package model

type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

const MaxMoodScore = 10

// MoodSample is one point on the weekly mood chart.
type MoodSample struct {
	Day     Weekday `json:"day"`
	Mood    int     `json:"mood"`
	Energy  int     `json:"energy"`
	Emotion string  `json:"emotion"`
}

func (m MoodSample) Valid() bool {
	return m.Mood >= 0 && m.Mood <= MaxMoodScore && m.Energy >= 0 && m.Energy <= MaxMoodScore
}

type MoodSummary struct {
	AverageMood     float64 `json:"average_mood"`
	AverageEnergy   float64 `json:"average_energy"`
	BestDay         Weekday `json:"best_day"`
	DominantEmotion string  `json:"dominant_emotion"`
	Samples         int     `json:"samples"`
}
