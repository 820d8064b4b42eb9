package config

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/errors"
)

const (
	// DefaultWord rendered when no word is given
	DefaultWord = "NERDLIN"

	// DefaultIntensity is the number of commits per lit cell
	DefaultIntensity = 6

	// DefaultAuthorName used for commits when no name is given
	DefaultAuthorName = "Nerdlin"

	// DefaultFilePath is the tracking file touched by every commit,
	// relative to the repository root
	DefaultFilePath = "art/log.txt"
)

// Config holds all contribart application settings
type Config struct {
	// Artwork configuration
	Word      string
	Intensity int

	// Commit configuration
	Apply       bool
	Push        bool
	AuthorName  string
	AuthorEmail string
	FilePath    string
	RepoPath    string
	AllowEmpty  bool

	// User experience
	Verbose bool

	// Debugging
	Debug   bool
	LogFile string

	// Special flags
	Version  bool
	ShowLogo bool // Shows ASCII logo and exits

	// Build metadata
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Word:        DefaultWord,
		Intensity:   DefaultIntensity,
		Apply:       false,
		Push:        false,
		AuthorName:  DefaultAuthorName,
		AuthorEmail: "",
		FilePath:    DefaultFilePath,
		RepoPath:    "",
		AllowEmpty:  false,
		Verbose:     true,
		Debug:       false,
		LogFile:     "",
		Version:     false,
		ShowLogo:    false,

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromEnvironment updates config from environment variables.
// A .env file in the working directory is folded into the environment
// first, without overriding variables that are already set.
func (c *Config) LoadFromEnvironment() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	c.Word = getEnvString("CONTRIB_WORD", c.Word)
	c.Intensity = getEnvInt("CONTRIB_INTENSITY", c.Intensity)
	c.AuthorName = getEnvString("CONTRIB_NAME", c.AuthorName)
	c.FilePath = getEnvString("CONTRIB_FILE", c.FilePath)
	c.RepoPath = getEnvString("REPO_PATH", c.RepoPath)
	c.Verbose = getEnvBool("VERBOSE", c.Verbose)
	c.Debug = getEnvBool("DEBUG", c.Debug)
	c.LogFile = getEnvString("LOG_FILE", c.LogFile)

	// The author email falls back to git's own variable, mirroring what
	// a plain git commit would use
	c.AuthorEmail = getEnvString("GIT_AUTHOR_EMAIL", c.AuthorEmail)
}

// SetupFlags sets up command-line flags to override config values
func (c *Config) SetupFlags(fs *flag.FlagSet) {
	// Save original value for the inverted flag (for CLI ergonomics)
	origVerbose := c.Verbose

	fs.StringVar(&c.Word, "word", c.Word, "Word to render (letters supported: N, E, R, D, L, I)")
	fs.IntVar(&c.Intensity, "intensity", c.Intensity, "Commits per lit cell (4-10 recommended)")
	fs.BoolVar(&c.Apply, "apply", c.Apply, "Create commits instead of dry-run")
	fs.BoolVar(&c.Push, "push", c.Push, "Push after committing")
	fs.StringVar(&c.AuthorName, "name", c.AuthorName, "Author name to use for commits")
	fs.StringVar(&c.AuthorEmail, "email", c.AuthorEmail, "Author email (your verified or <username>@users.noreply.github.com address)")
	fs.StringVar(&c.FilePath, "file", c.FilePath, "File to touch for commits")
	fs.StringVar(&c.RepoPath, "repo", c.RepoPath, "Path to repository (default: current directory)")
	fs.BoolVar(&c.AllowEmpty, "allow-empty", c.AllowEmpty, "Pass --allow-empty to git commit")
	fs.BoolVar(&c.Verbose, "quiet", !origVerbose, "Hide informational messages")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Path to log file (default: ~/.local/share/contribart/logs/contribart-{repo-hash}.log)")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version information and exit")
	fs.BoolVar(&c.ShowLogo, "logo", c.ShowLogo, "Display ASCII logo and exit")
}

// ParseFlags parses the command-line arguments and updates the config
func (c *Config) ParseFlags() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	c.SetupFlags(fs)

	var appArgs []string
	// Skip the program name (os.Args[0])
	if len(os.Args) > 1 {
		appArgs = os.Args[1:]
	}

	if err := fs.Parse(appArgs); err != nil {
		return errors.NewConfigError("flags", nil, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to parse command-line arguments: %v", err)))
	}

	// Invert the boolean flag here, after parsing (for CLI ergonomics):
	// -quiet means Verbose=false
	c.Verbose = !c.Verbose

	return nil
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.Intensity < 0 {
		err := fmt.Errorf("invalid intensity: %d (must not be negative)", c.Intensity)
		return errors.NewConfigError("intensity", c.Intensity, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if c.Apply && c.AuthorEmail == "" {
		return errors.NewConfigError("email", nil, errors.ErrMissingAuthorEmail)
	}

	if c.FilePath == "" {
		c.FilePath = DefaultFilePath
	}

	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("repoPath", "", errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to get current directory: %v", err)))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("repoPath", c.RepoPath, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	c.RepoPath = absRepoPath

	if c.LogFile == "" {
		// Follow XDG Base Directory Specification
		logDir := os.Getenv("XDG_DATA_HOME")
		if logDir == "" {
			// Default XDG data home if not set
			homeDir, err := os.UserHomeDir()
			if err == nil {
				logDir = filepath.Join(homeDir, ".local", "share")
			} else {
				// Fallback to the temp directory if home dir can't be determined
				logDir = os.TempDir()
			}
		}

		// Create a unique identifier for the repository
		repoHash := fmt.Sprintf("%x", sha256OfString(c.RepoPath)[:8])

		// Final log directory and file
		artLogDir := filepath.Join(logDir, "contribart", "logs")
		c.LogFile = filepath.Join(artLogDir, fmt.Sprintf("contribart-%s.log", repoHash))
	}

	return nil
}

// getEnvString returns an environment variable string or a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as int or a default value
func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		valueLower := strings.ToLower(valueStr)
		if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
			return true
		}
		if valueLower == "false" || valueLower == "0" || valueLower == "no" {
			return false
		}
		// For any other value, fall back to default
	}
	return defaultValue
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
