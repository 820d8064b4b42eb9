// Package font holds the 5x7 pixel glyph table and composes words onto
// a weekly contribution canvas.
//
// The canvas is 7 rows (weekdays, Sunday first) by 52 columns (weeks)
// to match one year of a contribution graph. Composition centers the
// word horizontally, separates letters by one blank column, silently
// skips characters without a glyph and clips columns that fall off the
// right edge. Canvases are plain value data, recomputed per run.
package font
