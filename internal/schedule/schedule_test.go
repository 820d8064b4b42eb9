package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/font"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSundayOfWeek(t *testing.T) {
	// 2026-08-16 is a Sunday; every day of that week rolls back to it
	sunday := date(2026, time.August, 16)
	for offset := 0; offset < 7; offset++ {
		day := sunday.AddDate(0, 0, offset)
		assert.Equal(t, sunday, SundayOfWeek(day), "day %s", day.Format("2006-01-02"))
	}
}

func TestSundayOfWeekNormalizesTime(t *testing.T) {
	// Late evening in a non-UTC zone still resolves to that zone's calendar date
	loc := time.FixedZone("UTC+5", 5*3600)
	evening := time.Date(2026, time.August, 19, 23, 30, 0, 0, loc)

	got := SundayOfWeek(evening)
	assert.Equal(t, date(2026, time.August, 16), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestAnchorInvariants(t *testing.T) {
	// Sweep over a year so every weekday and several month/year
	// boundaries are exercised
	start := date(2025, time.November, 1)
	for i := 0; i < 366; i++ {
		today := start.AddDate(0, 0, i)

		anchor := Anchor(today)
		assert.Equal(t, time.Sunday, anchor.Weekday(), "anchor for %s", today.Format("2006-01-02"))
		assert.Equal(t, SundayOfWeek(today), anchor.AddDate(0, 0, 7*(WeeksShown-1)),
			"anchor+51w for %s", today.Format("2006-01-02"))
	}
}

func TestPlanOrderAndCount(t *testing.T) {
	canvas := font.Compose("NERDLIN", font.DefaultColumns, font.DefaultSpacing)
	today := date(2026, time.August, 26)

	entries := Plan(canvas, today)
	require.Equal(t, canvas.LitCount(), len(entries))

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.Before(entries[i-1].Date),
			"entry %d (%s) precedes entry %d (%s)",
			i, entries[i].Date, i-1, entries[i-1].Date)
	}
}

func TestPlanRoundTrip(t *testing.T) {
	canvas := font.Compose("NERDLIN", font.DefaultColumns, font.DefaultSpacing)
	today := date(2026, time.August, 26)
	anchor := Anchor(today)

	for _, e := range Plan(canvas, today) {
		days := int(e.Date.Sub(anchor).Hours() / 24)
		assert.Equal(t, e.Column, days/7, "column for %s", e.Date.Format("2006-01-02"))
		assert.Equal(t, e.Row, days%7, "row for %s", e.Date.Format("2006-01-02"))
		assert.True(t, canvas.Lit(e.Row, e.Column), "cell (%d,%d) not lit", e.Row, e.Column)
	}
}

func TestPlanLetterI(t *testing.T) {
	// "I" is 5 wide, so it lands centered at columns 23..27. The glyph
	// has full top and bottom bars and a single-column stem.
	canvas := font.Compose("I", font.DefaultColumns, font.DefaultSpacing)
	today := date(2026, time.August, 22) // a Saturday
	anchor := Anchor(today)

	entries := Plan(canvas, today)
	require.Len(t, entries, 13)

	rowsByColumn := map[int][]int{}
	for _, e := range entries {
		assert.GreaterOrEqual(t, e.Column, 23)
		assert.LessOrEqual(t, e.Column, 27)
		rowsByColumn[e.Column] = append(rowsByColumn[e.Column], e.Row)
	}

	assert.Equal(t, []int{0, 4}, rowsByColumn[23])
	assert.Equal(t, []int{0, 4}, rowsByColumn[24])
	assert.Equal(t, []int{0, 1, 2, 3, 4}, rowsByColumn[25])
	assert.Equal(t, []int{0, 4}, rowsByColumn[26])
	assert.Equal(t, []int{0, 4}, rowsByColumn[27])

	assert.Equal(t, anchor.AddDate(0, 0, 23*7), entries[0].Date)
	assert.Equal(t, anchor.AddDate(0, 0, 27*7+4), entries[len(entries)-1].Date)
}

func TestPlanEmptyCanvas(t *testing.T) {
	canvas := font.NewCanvas(font.DefaultColumns)
	assert.Empty(t, Plan(canvas, date(2026, time.August, 26)))
}
