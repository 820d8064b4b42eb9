package lock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/errors"
)

// Locker prevents concurrent apply runs against the same repository
// using a file lock keyed on the repository path
type Locker struct {
	lockFile string
	lockFd   *os.File
	pid      int
	acquired bool
}

// New creates a Locker for the specified repository path
func New(repoPath string) (*Locker, error) {
	if runtime.GOOS == "windows" {
		return nil, errors.NewLockError("", 0,
			errors.Wrap(errors.ErrLockAcquisitionFailure,
				"contribart currently only supports Unix-like operating systems (Linux, macOS, BSD)"))
	}

	repoHash := fmt.Sprintf("%x", sha256.Sum256([]byte(repoPath)))[:16]
	lockFile := filepath.Join(os.TempDir(), fmt.Sprintf("contribart-%s.lock", repoHash))

	return &Locker{
		lockFile: lockFile,
		pid:      os.Getpid(),
		acquired: false,
	}, nil
}

// Acquire tries to acquire the lock
func (l *Locker) Acquire() error {
	err := l.tryCreateLock()
	if err == nil {
		return nil
	} else if os.IsExist(err) {
		// Only try to adopt an existing lock when the failure was
		// specifically that the file already exists
		return l.tryAcquireExistingLock()
	}

	return err
}

// tryCreateLock attempts to create and lock a new lock file
func (l *Locker) tryCreateLock() error {
	var err error

	// O_EXCL with O_CREATE ensures the file is created atomically
	l.lockFd, err = os.OpenFile(l.lockFile, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0666)
	if err != nil {
		// Pass through the original error so os.IsExist() can detect it
		if os.IsExist(err) {
			return err
		}
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to create lock file"))
	}

	if err = l.acquireFlock(); err != nil {
		l.closeFileDescriptor()
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to acquire lock on newly created lock file"))
	}

	if err = l.writePidToLockFile(); err != nil {
		if releaseErr := l.Release(); releaseErr != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to write PID and failed to release lock: %v", releaseErr))
		}
		return err
	}

	l.acquired = true
	return nil
}

// tryAcquireExistingLock acquires a lock on an existing lock file
func (l *Locker) tryAcquireExistingLock() error {
	var err error
	l.lockFd, err = os.OpenFile(l.lockFile, os.O_RDWR, 0666)
	if err != nil {
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to open existing lock file"))
	}

	if err = l.acquireFlock(); err != nil {
		l.closeFileDescriptor()

		// Older Unix systems report EWOULDBLOCK and EAGAIN as distinct
		// codes; portable callers must treat them the same
		if errors.Is(err, syscall.EWOULDBLOCK) || errors.Is(err, syscall.EAGAIN) {
			return l.handleBlockedLock()
		}

		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to acquire lock"))
	}

	if err = l.resetAndWritePid(); err != nil {
		if releaseErr := l.Release(); releaseErr != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to reset/write PID and failed to release lock: %v", releaseErr))
		}
		return err
	}

	l.acquired = true
	return nil
}

// handleBlockedLock handles locks held by another process
// and attempts to recover from stale locks
func (l *Locker) handleBlockedLock() error {
	otherPid, pidErr := l.readLockFilePid()
	if pidErr != nil {
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(pidErr, "another contribart apply is running, but couldn't identify its PID"))
	}

	if isProcessRunning(otherPid) {
		return errors.NewLockError(l.lockFile, otherPid, errors.ErrAlreadyRunning)
	}

	return l.handleStaleLock(otherPid)
}

// acquireFlock gets an exclusive non-blocking lock
func (l *Locker) acquireFlock() error {
	return syscall.Flock(int(l.lockFd.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
}

// resetAndWritePid clears the file and writes the current PID
func (l *Locker) resetAndWritePid() error {
	if err := l.lockFd.Truncate(0); err != nil {
		return errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(err, "failed to truncate lock file"))
	}

	return l.writePidToLockFile()
}

// writePidToLockFile writes PID to the lock file
func (l *Locker) writePidToLockFile() error {
	_, err := l.lockFd.WriteAt([]byte(strconv.Itoa(l.pid)), 0)
	if err != nil {
		return errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(err, "failed to write PID to lock file"))
	}
	return nil
}

// closeFileDescriptor closes the lock file descriptor
func (l *Locker) closeFileDescriptor() {
	if l.lockFd != nil {
		_ = l.lockFd.Close()
		l.lockFd = nil
	}
}

// isProcessRunning checks if a process exists using signal 0
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	return err == nil
}

// handleStaleLock removes and recreates a stale lock
func (l *Locker) handleStaleLock(otherPid int) error {
	l.closeFileDescriptor()

	if err := os.Remove(l.lockFile); err != nil {
		return errors.NewLockError(l.lockFile, otherPid,
			errors.Wrap(err, fmt.Sprintf("found stale lock file from PID %d, but failed to remove it", otherPid)))
	}

	var err error
	l.lockFd, err = os.OpenFile(l.lockFile, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0666)
	if err != nil {
		if os.IsExist(err) {
			return errors.NewLockError(l.lockFile, 0,
				errors.Wrap(err, "another contribart apply took the lock immediately after we removed the stale lock"))
		}
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to open lock file after removing stale lock"))
	}

	if err = l.acquireFlock(); err != nil {
		l.closeFileDescriptor()
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to acquire lock even after removing stale lock"))
	}

	if err = l.writePidToLockFile(); err != nil {
		if releaseErr := l.Release(); releaseErr != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to write PID and failed to release lock: %v", releaseErr))
		}
		return err
	}

	l.acquired = true
	return nil
}

// readLockFilePid reads and parses the PID from the lock file
func (l *Locker) readLockFilePid() (int, error) {
	data, err := os.ReadFile(l.lockFile)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read lock file")
	}

	pidStr := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return 0, errors.Wrap(err, "invalid PID in lock file")
	}

	return pid, nil
}

// Release releases the lock if it was acquired
func (l *Locker) Release() error {
	if l.lockFd == nil {
		return nil
	}

	var err error

	// Verify the descriptor is still usable before unlocking; a stat
	// is the safest probe
	fd := l.lockFd.Fd()
	var stat syscall.Stat_t
	if statErr := syscall.Fstat(int(fd), &stat); statErr != nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(statErr, "failed to stat lock file - file descriptor is invalid"))
	} else {
		_, writeErr := l.lockFd.WriteAt([]byte{}, 0)
		if writeErr != nil {
			err = errors.NewLockError(l.lockFile, l.pid,
				errors.Wrap(writeErr, "failed to write to lock file - file descriptor is invalid"))
		} else {
			if flockErr := syscall.Flock(int(fd), syscall.LOCK_UN); flockErr != nil {
				err = errors.NewLockError(l.lockFile, l.pid,
					errors.Wrap(flockErr, "failed to release lock"))
			}
		}
	}

	// Always close the descriptor, even if previous operations failed
	if closeErr := l.lockFd.Close(); closeErr != nil && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(closeErr, "failed to close lock file"))
	}

	l.lockFd = nil
	l.acquired = false

	// Always try to remove the lock file so a crashed run doesn't leave
	// a stale file behind; only report the error if nothing failed earlier
	if removeErr := os.Remove(l.lockFile); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(removeErr, "failed to remove lock file"))
	}

	return err
}
