// Package report renders the dry-run view of a composed canvas and its
// commit plan: a pixel preview for checking the artwork and a per-week
// table for checking the dates before anything is applied.
package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/font"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/schedule"
)

// RenderCanvas returns a text preview of the canvas, one line per
// weekday row, '#' for lit cells and '.' for dark ones
func RenderCanvas(canvas font.Canvas) string {
	var b strings.Builder
	for row := 0; row < font.Rows; row++ {
		for col := 0; col < canvas.Columns(); col++ {
			if canvas.Lit(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Totals returns the number of lit cells in the plan and the number of
// commits they translate into at the given intensity
func Totals(entries []schedule.Entry, intensity int) (cells, commits int) {
	return len(entries), len(entries) * intensity
}

// week aggregates the plan entries that share a column
type week struct {
	start string
	cells int
}

// WriteWeekTable writes a per-week summary table of the plan: the week
// start date, how many cells light up that week and the resulting
// commit count. Weeks without lit cells are omitted.
func WriteWeekTable(w io.Writer, entries []schedule.Entry, intensity int) {
	var weeks []week
	byColumn := map[int]int{}

	for _, e := range entries {
		if _, seen := byColumn[e.Column]; !seen {
			byColumn[e.Column] = len(weeks)
			weeks = append(weeks, week{
				start: e.Date.AddDate(0, 0, -e.Row).Format("2006-01-02"),
			})
		}
		weeks[byColumn[e.Column]].cells++
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Week Of", "Lit Cells", "Commits"})

	for _, wk := range weeks {
		table.Append([]string{
			wk.start,
			strconv.Itoa(wk.cells),
			strconv.Itoa(wk.cells * intensity),
		})
	}

	table.Render()
}
