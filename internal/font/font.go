package font

import (
	"sort"
	"strings"
)

const (
	// GlyphWidth is the width of every glyph in columns
	GlyphWidth = 5

	// GlyphHeight is the height of every glyph in rows
	GlyphHeight = 7

	// Rows is the canvas height, one row per weekday
	Rows = 7

	// DefaultColumns is the canvas width, one column per week of the
	// rolling year shown on a contribution graph
	DefaultColumns = 52

	// DefaultSpacing is the number of blank columns between letters
	DefaultSpacing = 1
)

// Glyph is an immutable 5x7 bitmap, one string per row, '1' = lit.
type Glyph [GlyphHeight]string

// glyphs maps an uppercase letter to its bitmap. Characters outside
// this table are dropped during composition rather than rejected.
var glyphs = map[rune]Glyph{
	'N': {
		"10001",
		"11001",
		"10101",
		"10011",
		"10001",
		"10001",
		"10001",
	},
	'E': {
		"11111",
		"10000",
		"11110",
		"10000",
		"11111",
		"00000",
		"00000",
	},
	'R': {
		"11110",
		"10001",
		"11110",
		"10100",
		"10010",
		"10001",
		"00000",
	},
	'D': {
		"11110",
		"10001",
		"10001",
		"10001",
		"11110",
		"00000",
		"00000",
	},
	'L': {
		"10000",
		"10000",
		"10000",
		"10000",
		"11111",
		"00000",
		"00000",
	},
	'I': {
		"11111",
		"00100",
		"00100",
		"00100",
		"11111",
		"00000",
		"00000",
	},
}

// Lookup returns the glyph for an uppercase letter
func Lookup(ch rune) (Glyph, bool) {
	g, ok := glyphs[ch]
	return g, ok
}

// SupportedLetters returns the letters in the glyph table, sorted
func SupportedLetters() []rune {
	letters := make([]rune, 0, len(glyphs))
	for ch := range glyphs {
		letters = append(letters, ch)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Canvas is a Rows x columns boolean pixel grid. Row 0 is Sunday,
// column 0 is the earliest week. Immutable once composed.
type Canvas struct {
	columns int
	cells   []bool
}

// NewCanvas creates an empty canvas with the given number of columns
func NewCanvas(columns int) Canvas {
	return Canvas{
		columns: columns,
		cells:   make([]bool, Rows*columns),
	}
}

// Columns returns the canvas width
func (c Canvas) Columns() int {
	return c.columns
}

// Lit reports whether the cell at (row, col) is set.
// Out-of-range coordinates are simply unlit.
func (c Canvas) Lit(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= c.columns {
		return false
	}
	return c.cells[row*c.columns+col]
}

// LitCount returns the number of lit cells
func (c Canvas) LitCount() int {
	n := 0
	for _, lit := range c.cells {
		if lit {
			n++
		}
	}
	return n
}

func (c Canvas) set(row, col int) {
	if col < 0 || col >= c.columns {
		return
	}
	c.cells[row*c.columns+col] = true
}

// Measure returns the rendered width of a word in columns, counting
// only recognized letters and the spacing between them
func Measure(word string, spacing int) int {
	width := 0
	letters := 0
	for _, ch := range strings.ToUpper(word) {
		if _, ok := glyphs[ch]; !ok {
			continue
		}
		letters++
		width += GlyphWidth
	}
	if letters > 0 {
		width += spacing * (letters - 1)
	}
	return width
}

// Dropped returns the characters of word that have no glyph and would
// be skipped by Compose. Used for a dry-run warning only.
func Dropped(word string) []rune {
	var dropped []rune
	for _, ch := range strings.ToUpper(word) {
		if _, ok := glyphs[ch]; !ok {
			dropped = append(dropped, ch)
		}
	}
	return dropped
}

// Compose renders word onto a fresh canvas, horizontally centered.
//
// The word is case-normalized; characters absent from the glyph table
// are skipped. Columns that fall outside the canvas are clipped, so a
// word wider than the canvas renders partially, truncated on the right.
// A word with no recognized characters yields an all-empty canvas.
func Compose(word string, columns, spacing int) Canvas {
	canvas := NewCanvas(columns)

	var letters []Glyph
	for _, ch := range strings.ToUpper(word) {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		letters = append(letters, g)
	}

	width := len(letters) * GlyphWidth
	if len(letters) > 0 {
		width += spacing * (len(letters) - 1)
	}

	startCol := (columns - width) / 2
	if startCol < 0 {
		startCol = 0
	}

	col := startCol
	for _, g := range letters {
		for r := 0; r < GlyphHeight; r++ {
			for x := 0; x < GlyphWidth; x++ {
				if g[r][x] == '1' {
					canvas.set(r, col+x)
				}
			}
		}
		col += GlyphWidth + spacing
	}

	return canvas
}
