package journal

import (
	"fmt"
	"time"
)

// DateLayout is the key format of journal entries.
const DateLayout = "2006-01-02"

// Window is how many synthetic dates the journal view cycles through.
const Window = 3

// Navigator cycles the journal view through today and the two days before.
type Navigator struct {
	now func() time.Time
}

func NewNavigator(now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{now: now}
}

// Today is the current date key in UTC.
func (n *Navigator) Today() string {
	return n.now().UTC().Format(DateLayout)
}

// Dates returns today, yesterday and the day before, newest first.
func (n *Navigator) Dates() []string {
	today := n.now().UTC()
	out := make([]string, Window)
	for i := range out {
		out[i] = today.AddDate(0, 0, -i).Format(DateLayout)
	}
	return out
}

// Next returns the date after current in the cycle. A date outside the
// window restarts the cycle at today.
func (n *Navigator) Next(current string) string {
	dates := n.Dates()
	for i, d := range dates {
		if d == current {
			return dates[(i+1)%len(dates)]
		}
	}
	return dates[0]
}

// ParseDate validates a date key.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid journal date %q: %w", s, err)
	}
	return t, nil
}
