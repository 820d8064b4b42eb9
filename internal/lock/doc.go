// Package lock provides a file-based locking mechanism for apply runs.
//
// contribart is typically re-run on a schedule to keep the artwork
// visible on the rolling one-year board. Two overlapping apply runs
// against the same repository would interleave their backdated commits,
// so each apply holds an exclusive lock for the duration of the run.
// Dry runs never take the lock.
//
// # Mechanism
//
// The lock is a file in the system temp directory named after a hash
// of the repository path, holding the PID of the lock holder. An
// exclusive non-blocking flock guards against races on the file
// itself. When the file exists but its flock is free, or its recorded
// process is gone, the lock is treated as stale and taken over.
//
// # Platform Support
//
// The implementation relies on flock and is Unix-only; New returns an
// error on Windows.
//
// # Usage
//
//	locker, err := lock.New(cfg.RepoPath)
//	if err != nil {
//	    return err
//	}
//	if err := locker.Acquire(); err != nil {
//	    return err
//	}
//	defer locker.Release()
package lock
