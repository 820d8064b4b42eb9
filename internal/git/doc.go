// Package git implements the commit-creation side of contribart.
//
// The package drives the command-line git executable; it does not link
// a git library. Backdating relies on GIT_AUTHOR_DATE and
// GIT_COMMITTER_DATE environment overrides behaving exactly as they do
// from a shell, which the real git binary guarantees.
//
// # Core Components
//
//   - CommandExecutor: Interface abstracting command execution so all
//     git interaction can be tested against a mock
//   - ExecExecutor: Default implementation over os/exec
//   - Painter: Creates the per-day backdated commits for a schedule
//     and optionally pushes afterwards
//   - IsRepository: Work-tree check used before any apply run
//
// # Commit Shape
//
// Each commit appends one "<date> - <word> pixel" line to the tracking
// file, stages just that file and commits with author and committer
// set to the configured identity and both dates fixed at noon UTC of
// the scheduled day. One lit cell therefore turns into exactly
// intensity commits on one calendar day.
//
// # Error Handling
//
// Any git failure is wrapped in an errors.GitError carrying the
// command, its arguments and captured stderr, and aborts the remaining
// schedule. There is no retry and no partial-success bookkeeping;
// inspecting the dry run first is the intended safeguard.
package git
