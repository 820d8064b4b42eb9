package lock

import (
	"os"
	"strconv"
	"testing"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/errors"
)

func TestAcquireAndRelease(t *testing.T) {
	locker, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := locker.Acquire(); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	if _, err := os.Stat(locker.lockFile); err != nil {
		t.Errorf("Expected lock file to exist: %v", err)
	}

	data, err := os.ReadFile(locker.lockFile)
	if err != nil {
		t.Fatalf("Failed to read lock file: %v", err)
	}
	if pid, _ := strconv.Atoi(string(data)); pid != os.Getpid() {
		t.Errorf("Expected lock file to hold our PID %d, got %q", os.Getpid(), data)
	}

	if err := locker.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	if _, err := os.Stat(locker.lockFile); !os.IsNotExist(err) {
		t.Errorf("Expected lock file to be removed after release")
	}
}

func TestReleaseWithoutAcquire(t *testing.T) {
	locker, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := locker.Release(); err != nil {
		t.Errorf("Release without acquire should be a no-op, got %v", err)
	}
}

func TestReacquireAfterRelease(t *testing.T) {
	repoPath := t.TempDir()

	locker, err := New(repoPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := locker.Acquire(); err != nil {
			t.Fatalf("Acquire #%d failed: %v", i+1, err)
		}
		if err := locker.Release(); err != nil {
			t.Fatalf("Release #%d failed: %v", i+1, err)
		}
	}
}

func TestStaleLockTakeover(t *testing.T) {
	repoPath := t.TempDir()

	locker, err := New(repoPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Plant a lock file with a PID that cannot be running. No flock is
	// held on it, so acquisition goes through the existing-lock path.
	if err := os.WriteFile(locker.lockFile, []byte("999999999"), 0666); err != nil {
		t.Fatalf("Failed to plant stale lock file: %v", err)
	}
	defer func() { _ = os.Remove(locker.lockFile) }()

	if err := locker.Acquire(); err != nil {
		t.Fatalf("Expected stale lock takeover to succeed, got %v", err)
	}
	if err := locker.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
}

func TestSecondAcquireIsRejected(t *testing.T) {
	repoPath := t.TempDir()

	holder, err := New(repoPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := holder.Acquire(); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer func() { _ = holder.Release() }()

	// A second locker in the same process cannot take the flock
	second, err := New(repoPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	acquireErr := second.Acquire()
	if acquireErr == nil {
		_ = second.Release()
		t.Skip("flock does not contend within a single process on this platform")
	}

	var lockErr *errors.LockError
	if !errors.As(acquireErr, &lockErr) {
		t.Errorf("Expected *errors.LockError, got %T: %v", acquireErr, acquireErr)
	}
	if !errors.Is(acquireErr, errors.ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning, got %v", acquireErr)
	}
}
