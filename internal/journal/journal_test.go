package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}

func TestNavigatorDates(t *testing.T) {
	n := NewNavigator(fixedNow)
	assert.Equal(t, "2026-03-01", n.Today())
	assert.Equal(t, []string{"2026-03-01", "2026-02-28", "2026-02-27"}, n.Dates())
}

func TestNavigatorCycles(t *testing.T) {
	n := NewNavigator(fixedNow)

	d := n.Today()
	seen := []string{d}
	for i := 0; i < 3; i++ {
		d = n.Next(d)
		seen = append(seen, d)
	}
	assert.Equal(t, []string{"2026-03-01", "2026-02-28", "2026-02-27", "2026-03-01"}, seen)
}

func TestNavigatorUnknownDateRestartsAtToday(t *testing.T) {
	n := NewNavigator(fixedNow)
	assert.Equal(t, "2026-03-01", n.Next("2025-12-25"))
	assert.Equal(t, "2026-03-01", n.Next("garbage"))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2026-02-30")
	require.Error(t, err)

	got, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())
}

func TestNormalizeKeepsPlainText(t *testing.T) {
	in := "Felt calm today.\n  Walked by the river. 3 < 5 and that's ok"
	assert.Equal(t, in, Normalize(in))
}

func TestNormalizeStripsPastedHTML(t *testing.T) {
	in := `<p>Morning <b>run</b> went well</p><div>Then&nbsp;coffee<br>with Sam</div><ul><li>gratitude</li></ul>`
	assert.Equal(t, "Morning run went well\nThen coffee\nwith Sam\ngratitude", Normalize(in))
}
