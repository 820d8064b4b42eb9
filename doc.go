// Package contribart draws words on a contribution heatmap
//
// contribart renders a word as pixel art across the last 52 weeks of a
// git repository's history. Each column of the contribution graph is a
// week and each row a weekday, so a 5x7 pixel font maps directly onto
// the board: for every lit pixel the tool creates a handful of commits
// whose author and committer dates are backdated to the matching day.
//
// By default contribart only prints the composed canvas and the commit
// plan. Nothing is written until -apply is passed, which makes the
// dry run the natural place to check centering, spelling and commit
// counts before touching the repository.
//
// # Quick Start
//
//	# Inside a dedicated repository (a public one is recommended)
//	cd /path/to/art/repo
//
//	# Inspect the plan first
//	contribart -word NERDLIN
//
//	# Create the commits and push them
//	contribart -word NERDLIN -intensity 6 -email you@users.noreply.github.com -apply -push
//
// # Key Features
//
//   - 5x7 Pixel Font: Letters are composed onto a 52-week canvas, centered
//   - Deterministic Dates: Every lit cell maps to exactly one calendar day
//   - Dry Run By Default: Review the canvas and plan before applying
//   - Backdated Commits: Author/committer dates are overridden per pixel
//
// # Module Structure
//
// The module is organized into these packages:
//
//   - cmd/contribart: Command-line interface
//   - internal/font: Glyph table and word-to-canvas composition
//   - internal/schedule: Pixel-to-date planning over the 52-week window
//   - internal/git: Git operations and backdated commit creation
//   - internal/report: Dry-run canvas preview and plan tables
//   - internal/config: Configuration and flag parsing
//   - internal/lock: File-based locking for apply runs
//   - internal/logger: Logging facilities
//   - internal/errors: Error handling utilities
//   - internal/constants: ASCII art and fixed values
//
// # Common Configuration Options
//
//	# Render a different word (letters N, E, R, D, L, I are supported)
//	contribart -word LINED
//
//	# Lighter shading on the board
//	contribart -intensity 2 -apply -email ...
//
//	# Touch a different tracking file
//	contribart -file notes/heatmap.txt -apply -email ...
//
// # Notes On Contribution Counting
//
// Commits only count toward a profile's graph when the author email is
// linked to the account; the <username>@users.noreply.github.com alias
// works. The board shows a rolling year, so the word fades unless the
// tool is re-run periodically.
//
// # Implementation Notes
//
// contribart drives the command-line git executable rather than a Go
// git library so that commit-date overrides behave exactly as they do
// when set from a shell. Commands are executed through an abstracted
// interface that can be replaced for testing.
//
// The application handles SIGINT and SIGTERM so that an interrupted
// apply stops cleanly between commits; whatever was already committed
// stays in history.
package contribart
