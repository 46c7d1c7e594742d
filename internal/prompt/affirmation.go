package prompt

import (
	"math/rand"
	"sync"
)

var affirmations = []string{
	"You are capable of amazing things. Trust in your journey and embrace each moment with kindness. ✨",
	"Your thoughts create your reality. Choose positivity and watch your world transform. 🌟",
	"Every challenge you face is an opportunity to grow stronger and wiser. 💪",
	"You have the power to create positive change in your life, one small step at a time. 🌱",
	"Your mental health matters. Be gentle with yourself as you navigate life's ups and downs. 🤗",
	"Today is a new beginning. Release what no longer serves you and embrace fresh possibilities. 🌅",
	"You are worthy of love, happiness, and all the beautiful things life has to offer. 💖",
	"Your resilience is remarkable. You've overcome challenges before, and you can do it again. 🦋",
	"Take a deep breath. You are exactly where you need to be in this moment. 🌸",
	"Your emotions are valid. Honor them, learn from them, and let them guide you to healing. 🌈",
	"You are not alone in your journey. Support and love surround you, even when you can't see it. 🤝",
	"Progress, not perfection. Celebrate every small victory along your path to wellness. 🎉",
	"Your inner strength is limitless. Trust in your ability to handle whatever comes your way. ⭐",
	"Self-care isn't selfish—it's essential. Prioritize your wellbeing with compassion. 🛁",
	"You are writing your own story. Make it one of courage, growth, and self-love. 📖",
}

// Affirmations returns the full list.
func Affirmations() []string {
	out := make([]string, len(affirmations))
	copy(out, affirmations)
	return out
}

// AffirmationPicker draws affirmations from an injected source so a fixed
// seed gives a fixed sequence.
type AffirmationPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAffirmationPicker(src rand.Source) *AffirmationPicker {
	return &AffirmationPicker{rng: rand.New(src)}
}

func (p *AffirmationPicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return affirmations[p.rng.Intn(len(affirmations))]
}
