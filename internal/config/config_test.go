package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/errors"
)

func TestNewConfig(t *testing.T) {
	c := New()

	// Verify default values
	if c.Word != DefaultWord {
		t.Errorf("Expected Word=%s, got %s", DefaultWord, c.Word)
	}
	if c.Intensity != DefaultIntensity {
		t.Errorf("Expected Intensity=%d, got %d", DefaultIntensity, c.Intensity)
	}
	if c.AuthorName != DefaultAuthorName {
		t.Errorf("Expected AuthorName=%s, got %s", DefaultAuthorName, c.AuthorName)
	}
	if c.FilePath != DefaultFilePath {
		t.Errorf("Expected FilePath=%s, got %s", DefaultFilePath, c.FilePath)
	}
	if c.Apply {
		t.Errorf("Expected Apply=false, got true")
	}
	if c.Push {
		t.Errorf("Expected Push=false, got true")
	}
	if !c.Verbose {
		t.Errorf("Expected Verbose=true, got false")
	}
	if c.Debug {
		t.Errorf("Expected Debug=false, got true")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONTRIB_WORD", "LINED")
	t.Setenv("CONTRIB_INTENSITY", "3")
	t.Setenv("CONTRIB_NAME", "Tester")
	t.Setenv("CONTRIB_FILE", "track/me.txt")
	t.Setenv("GIT_AUTHOR_EMAIL", "tester@example.com")
	t.Setenv("REPO_PATH", "/tmp/test-repo")
	t.Setenv("VERBOSE", "false")
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_FILE", "/tmp/test.log")

	c := New()
	c.LoadFromEnvironment()

	// Verify values from environment
	if c.Word != "LINED" {
		t.Errorf("Expected Word=LINED, got %s", c.Word)
	}
	if c.Intensity != 3 {
		t.Errorf("Expected Intensity=3, got %d", c.Intensity)
	}
	if c.AuthorName != "Tester" {
		t.Errorf("Expected AuthorName=Tester, got %s", c.AuthorName)
	}
	if c.FilePath != "track/me.txt" {
		t.Errorf("Expected FilePath=track/me.txt, got %s", c.FilePath)
	}
	if c.AuthorEmail != "tester@example.com" {
		t.Errorf("Expected AuthorEmail=tester@example.com, got %s", c.AuthorEmail)
	}
	if c.RepoPath != "/tmp/test-repo" {
		t.Errorf("Expected RepoPath=/tmp/test-repo, got %s", c.RepoPath)
	}
	if c.Verbose {
		t.Errorf("Expected Verbose=false, got true")
	}
	if !c.Debug {
		t.Errorf("Expected Debug=true, got false")
	}
	if c.LogFile != "/tmp/test.log" {
		t.Errorf("Expected LogFile=/tmp/test.log, got %s", c.LogFile)
	}
}

func TestLoadFromEnvironmentInvalidInt(t *testing.T) {
	t.Setenv("CONTRIB_INTENSITY", "lots")

	c := New()
	c.LoadFromEnvironment()

	if c.Intensity != DefaultIntensity {
		t.Errorf("Expected invalid int to keep default %d, got %d", DefaultIntensity, c.Intensity)
	}
}

func TestSetupFlags(t *testing.T) {
	c := New()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetupFlags(fs)

	args := []string{
		"-word", "NILE",
		"-intensity", "4",
		"-apply",
		"-push",
		"-email", "flag@example.com",
		"-file", "other/file.txt",
		"-allow-empty",
	}

	if err := fs.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if c.Word != "NILE" {
		t.Errorf("Expected Word=NILE, got %s", c.Word)
	}
	if c.Intensity != 4 {
		t.Errorf("Expected Intensity=4, got %d", c.Intensity)
	}
	if !c.Apply {
		t.Errorf("Expected Apply=true, got false")
	}
	if !c.Push {
		t.Errorf("Expected Push=true, got false")
	}
	if c.AuthorEmail != "flag@example.com" {
		t.Errorf("Expected AuthorEmail=flag@example.com, got %s", c.AuthorEmail)
	}
	if c.FilePath != "other/file.txt" {
		t.Errorf("Expected FilePath=other/file.txt, got %s", c.FilePath)
	}
	if !c.AllowEmpty {
		t.Errorf("Expected AllowEmpty=true, got false")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CONTRIB_WORD", "ENVWORD")
	t.Setenv("GIT_AUTHOR_EMAIL", "env@example.com")

	c := New()
	c.LoadFromEnvironment()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetupFlags(fs)

	if err := fs.Parse([]string{"-word", "FLAGWORD"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if c.Word != "FLAGWORD" {
		t.Errorf("Expected flag to win over env, got %s", c.Word)
	}
	// Untouched flag keeps the env fallback
	if c.AuthorEmail != "env@example.com" {
		t.Errorf("Expected env email to survive, got %s", c.AuthorEmail)
	}
}

func TestFinalizeRequiresEmailWhenApplying(t *testing.T) {
	c := New()
	c.Apply = true
	c.RepoPath = t.TempDir()

	err := c.Finalize()
	if err == nil {
		t.Fatal("Expected error for missing email with Apply")
	}
	if !errors.Is(err, errors.ErrMissingAuthorEmail) {
		t.Errorf("Expected ErrMissingAuthorEmail, got %v", err)
	}

	var configErr *errors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("Expected *errors.ConfigError, got %T", err)
	}
}

func TestFinalizeDryRunNeedsNoEmail(t *testing.T) {
	c := New()
	c.RepoPath = t.TempDir()

	if err := c.Finalize(); err != nil {
		t.Errorf("Dry-run Finalize should not require email, got %v", err)
	}
}

func TestFinalizeRejectsNegativeIntensity(t *testing.T) {
	c := New()
	c.Intensity = -1
	c.RepoPath = t.TempDir()

	err := c.Finalize()
	if err == nil {
		t.Fatal("Expected error for negative intensity")
	}
	if !errors.Is(err, errors.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestFinalizeAllowsZeroIntensity(t *testing.T) {
	c := New()
	c.Intensity = 0
	c.RepoPath = t.TempDir()

	if err := c.Finalize(); err != nil {
		t.Errorf("Intensity 0 should be accepted, got %v", err)
	}
}

func TestFinalizeDefaultsRepoPathAndLogFile(t *testing.T) {
	c := New()

	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if !filepath.IsAbs(c.RepoPath) {
		t.Errorf("Expected absolute RepoPath, got %s", c.RepoPath)
	}
	if c.LogFile == "" {
		t.Error("Expected default LogFile to be set")
	}
	if !strings.Contains(c.LogFile, "contribart-") {
		t.Errorf("Expected repo-hashed log file name, got %s", c.LogFile)
	}
}

func TestFinalizeRestoresEmptyFilePath(t *testing.T) {
	c := New()
	c.FilePath = ""
	c.RepoPath = t.TempDir()

	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if c.FilePath != DefaultFilePath {
		t.Errorf("Expected FilePath=%s, got %s", DefaultFilePath, c.FilePath)
	}
}

func TestParseFlagsQuietInversion(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"contribart", "-quiet"}
	c := New()
	if err := c.ParseFlags(); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if c.Verbose {
		t.Error("Expected -quiet to disable Verbose")
	}

	os.Args = []string{"contribart"}
	c = New()
	if err := c.ParseFlags(); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if !c.Verbose {
		t.Error("Expected Verbose=true without -quiet")
	}
}
