// Package schedule maps lit canvas cells onto calendar dates.
//
// The contribution graph shows a rolling window of 52 weekly columns
// ending with the current week. Column 0 is anchored at the Sunday 51
// weeks before the Sunday of today's week, so column then row indices
// translate directly into dates. Planning is pure: no side effects,
// deterministic for a given canvas and reference day.
package schedule

import (
	"time"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/font"
)

// WeeksShown is the number of weekly columns on the contribution graph
const WeeksShown = 52

// Entry is one planned commit day together with its canvas position
type Entry struct {
	Date   time.Time
	Column int
	Row    int
}

// SundayOfWeek returns the Sunday of t's week, today included if t is
// a Sunday. The result is a bare date at midnight UTC.
func SundayOfWeek(t time.Time) time.Time {
	d := midnight(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Anchor returns the Sunday starting the earliest displayed week.
// Invariant: the result is a Sunday, and adding 51 weeks lands on the
// Sunday of today's own week.
func Anchor(today time.Time) time.Time {
	return SundayOfWeek(today).AddDate(0, 0, -7*(WeeksShown-1))
}

// Plan emits one entry per lit canvas cell, column-major then
// row-major. Columns are successive weeks and rows successive weekdays,
// so the emission order is also chronological; commit creation depends
// on the dates being non-decreasing.
func Plan(canvas font.Canvas, today time.Time) []Entry {
	anchor := Anchor(today)

	var entries []Entry
	for col := 0; col < canvas.Columns(); col++ {
		weekStart := anchor.AddDate(0, 0, 7*col)
		for row := 0; row < font.Rows; row++ {
			if canvas.Lit(row, col) {
				entries = append(entries, Entry{
					Date:   weekStart.AddDate(0, 0, row),
					Column: col,
					Row:    row,
				})
			}
		}
	}
	return entries
}

// midnight truncates t to its calendar date, normalized to UTC
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
