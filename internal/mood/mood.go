package mood

import "github.com/aarushimanot/ui-mindmirror/pkg/model"

var week = []model.MoodSample{
	{Day: model.Monday, Mood: 7, Energy: 6, Emotion: "joy"},
	{Day: model.Tuesday, Mood: 5, Energy: 4, Emotion: "neutral"},
	{Day: model.Wednesday, Mood: 8, Energy: 8, Emotion: "joy"},
	{Day: model.Thursday, Mood: 4, Energy: 3, Emotion: "sadness"},
	{Day: model.Friday, Mood: 9, Energy: 9, Emotion: "joy"},
	{Day: model.Saturday, Mood: 6, Energy: 5, Emotion: "calm"},
	{Day: model.Sunday, Mood: 7, Energy: 7, Emotion: "content"},
}

// Samples returns a copy of the fixed weekly series.
func Samples() []model.MoodSample {
	out := make([]model.MoodSample, len(week))
	copy(out, week)
	return out
}

// Summarize computes the weekly card figures. Ties for best day go to the
// earlier day; ties for dominant emotion go to the emotion seen first.
func Summarize(samples []model.MoodSample) model.MoodSummary {
	if len(samples) == 0 {
		return model.MoodSummary{}
	}
	var moodSum, energySum int
	best := samples[0]
	counts := make(map[string]int)
	order := make([]string, 0, len(samples))
	for _, s := range samples {
		moodSum += s.Mood
		energySum += s.Energy
		if s.Mood > best.Mood {
			best = s
		}
		if counts[s.Emotion] == 0 {
			order = append(order, s.Emotion)
		}
		counts[s.Emotion]++
	}
	dominant := order[0]
	for _, e := range order[1:] {
		if counts[e] > counts[dominant] {
			dominant = e
		}
	}
	n := float64(len(samples))
	return model.MoodSummary{
		AverageMood:     float64(moodSum) / n,
		AverageEnergy:   float64(energySum) / n,
		BestDay:         best.Day,
		DominantEmotion: dominant,
		Samples:         len(samples),
	}
}
