// Command contribart renders a word as pixel art on a contribution
// heatmap by creating backdated git commits.
//
// The contribution graph is 52 weekly columns by 7 weekday rows, which
// is exactly a canvas for a 5x7 pixel font. contribart composes the
// requested word onto that canvas, maps every lit cell to the matching
// calendar day within the last 52 weeks, and creates a configurable
// number of commits per cell with author and committer dates overridden
// to that day.
//
// # Usage
//
//	contribart [options]
//
// Without -apply the tool prints the composed canvas, a per-week plan
// table and the total commit count, then exits. This dry run is the
// intended way to verify the artwork before writing anything.
//
// # Options
//
//	-word         Word to render (default NERDLIN; letters N, E, R, D, L, I)
//	-intensity    Commits per lit cell (default 6)
//	-apply        Create commits instead of dry-run
//	-push         Push after committing
//	-name         Author name for commits
//	-email        Author email; falls back to GIT_AUTHOR_EMAIL
//	-file         Tracking file touched per commit (default art/log.txt)
//	-repo         Path to repository (default current directory)
//	-allow-empty  Pass --allow-empty to git commit
//	-quiet        Hide informational messages
//	-debug        Enable debug logging
//	-log-file     Path to log file
//	-version      Print version information and exit
//	-logo         Display ASCII logo and exit
//
// # Exit Status
//
// contribart exits non-zero when the configuration is invalid (for
// example -apply without an author email), when the target path is not
// a git repository, when another apply is already running against the
// same repository, or when any git command fails. A dry run always
// exits zero.
//
// # Examples
//
//	# Preview the default word
//	contribart
//
//	# Apply and push with the noreply address
//	contribart -apply -push -intensity 6 -email nerdlin@users.noreply.github.com
//
//	# A lighter rendering of a different word
//	contribart -word LINED -intensity 2 -apply -email ...
package main
