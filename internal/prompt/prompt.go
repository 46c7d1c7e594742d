package prompt

import "strings"

type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
)

// Payload is the canned card shown under an emotion reading.
type Payload struct {
	Tone         Tone   `json:"tone"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Gradient     string `json:"gradient"`
	Border       string `json:"border"`
	IconBg       string `json:"icon_bg"`
	TextColor    string `json:"text_color"`
	MessageColor string `json:"message_color"`
}

var positiveEmotions = map[string]struct{}{
	"joy":        {},
	"happiness":  {},
	"excitement": {},
	"love":       {},
	"gratitude":  {},
	"content":    {},
	"calm":       {},
	"peaceful":   {},
}

var (
	celebrate = Payload{
		Tone:  TonePositive,
		Title: "Celebrating Your Joy! 🎉",
		Message: "What a wonderful feeling! Your positive energy is shining through. " +
			"Take a moment to savor this happiness and maybe share it with someone special. " +
			"Consider writing down what brought you this joy so you can revisit it later. ✨",
		Gradient:     "from-emerald-50 to-teal-50",
		Border:       "border-emerald-200",
		IconBg:       "from-emerald-400 to-teal-400",
		TextColor:    "text-emerald-800",
		MessageColor: "text-emerald-700",
	}
	encourage = Payload{
		Tone:  ToneNegative,
		Title: "You're Stronger Than You Know 💪",
		Message: "It's okay to feel this way - your emotions are valid. " +
			"Remember that difficult feelings are temporary, and you have the strength to work through them. " +
			"Consider reaching out to someone you trust or try one of our breathing exercises. " +
			"Tomorrow is a new day full of possibilities. 🌅",
		Gradient:     "from-blue-50 to-indigo-50",
		Border:       "border-blue-200",
		IconBg:       "from-blue-400 to-indigo-400",
		TextColor:    "text-blue-800",
		MessageColor: "text-blue-700",
	}
)

// Classify reports whether an emotion/sentiment pair reads as positive.
// A positive sentiment wins over an emotion outside the allow-list.
func Classify(emotion, sentiment string) Tone {
	if _, ok := positiveEmotions[strings.ToLower(emotion)]; ok {
		return TonePositive
	}
	if strings.EqualFold(sentiment, string(TonePositive)) {
		return TonePositive
	}
	return ToneNegative
}

// Select returns the payload for an emotion reading.
func Select(emotion, sentiment string) Payload {
	if Classify(emotion, sentiment) == TonePositive {
		return celebrate
	}
	return encourage
}

// Detection is an emotion reading.
type Detection struct {
	Emotion   string `json:"emotion"`
	Sentiment string `json:"sentiment"`
}

// Detect returns the fixed reading the camera panel shows; there is no
// recognition model behind it.
func Detect() Detection {
	return Detection{Emotion: "joy", Sentiment: "positive"}
}
