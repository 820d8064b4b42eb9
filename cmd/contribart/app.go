package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/common"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/config"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/constants"
	internalErrors "github.com/Nerdlin/nerdlin-contrib-art/internal/errors"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/font"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/git"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/lock"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/logger"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/report"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/schedule"
)

// Painter performs the backdated commit creation
type Painter interface {
	Run(ctx context.Context, entries []schedule.Entry) error
	Push(ctx context.Context) error
	PrintSummary()
}

// Locker manages file locking
type Locker interface {
	Acquire() error
	Release() error
}

// Logger alias to common.Logger
type Logger = common.Logger

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Config *config.Config

	// Optional components
	Logger  Logger
	Locker  Locker
	Painter Painter

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	Exit         func(code int)
	ExecLookPath func(file string) (string, error)
	IsRepository func(path string) bool
	Now          func() time.Time
}

// App is the main contribart application
type App struct {
	Config  *config.Config
	Logger  Logger
	Locker  Locker
	Painter Painter

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	exit         func(code int)
	execLookPath func(file string) (string, error)
	isRepository func(path string) bool
	now          func() time.Time
}

// NewDefaultApp creates an App with standard dependencies
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo
	cfg.LoadFromEnvironment()

	opts := AppOptions{
		Config:       cfg,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Exit:         os.Exit,
		ExecLookPath: exec.LookPath,
		IsRepository: git.IsRepository,
		Now:          time.Now,
	}

	return NewApp(opts)
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:       opts.Config,
		Logger:       opts.Logger,
		Locker:       opts.Locker,
		Painter:      opts.Painter,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		exit:         opts.Exit,
		execLookPath: opts.ExecLookPath,
		isRepository: opts.IsRepository,
		now:          opts.Now,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.isRepository == nil {
		app.isRepository = git.IsRepository
	}
	if app.now == nil {
		app.now = time.Now
	}

	return app
}

// Initialize sets up components not provided during construction
func (a *App) Initialize() error {
	if err := a.Config.Finalize(); err != nil {
		// Config.Finalize() already returns a properly wrapped error,
		// so don't wrap it again if it's one of ours
		if internalErrors.Is(err, internalErrors.ErrInvalidConfiguration) ||
			internalErrors.Is(err, internalErrors.ErrMissingAuthorEmail) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.New(a.Config.Debug, a.Config.LogFile, a.Config.Verbose)
	}

	if a.Locker == nil {
		locker, err := lock.New(a.Config.RepoPath)
		if err != nil {
			return internalErrors.Wrap(err, "failed to initialize lock")
		}
		a.Locker = locker
	}

	if a.Painter == nil {
		painterConfig := git.PainterConfig{
			RepoPath:    a.Config.RepoPath,
			Word:        a.Config.Word,
			FilePath:    a.Config.FilePath,
			AuthorName:  a.Config.AuthorName,
			AuthorEmail: a.Config.AuthorEmail,
			Intensity:   a.Config.Intensity,
			AllowEmpty:  a.Config.AllowEmpty,
			Verbose:     a.Config.Verbose,
		}
		a.Painter = git.NewPainter(painterConfig, a.Logger)
	}

	return nil
}

// Run executes the application with the given context.
// Handles special flags, prints the plan, and applies it on request.
func (a *App) Run(ctx context.Context) error {
	// Ensure the app is fully initialised before doing any work.
	if err := a.Initialize(); err != nil {
		return err
	}

	// Handle special flags first
	if a.Config.Version {
		a.ShowVersion()
		return nil
	}

	if a.Config.ShowLogo {
		a.ShowLogo()
		return nil
	}

	// Ensure we always clean up logger / lock, even on early error paths
	defer func() {
		if err := a.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
		}
	}()

	canvas := font.Compose(a.Config.Word, font.DefaultColumns, font.DefaultSpacing)

	if dropped := font.Dropped(a.Config.Word); len(dropped) > 0 {
		a.Logger.WarningToUser("Skipping unsupported characters %q (supported letters: %s)",
			string(dropped), supportedLetters())
	}

	entries := schedule.Plan(canvas, a.now())
	cells, commits := report.Totals(entries, a.Config.Intensity)

	a.Logger.StatusMessage("🎨 Canvas (%d weeks x %d days):", canvas.Columns(), font.Rows)
	a.Logger.StatusMessage("%s", report.RenderCanvas(canvas))
	report.WriteWeekTable(a.Stdout, entries, a.Config.Intensity)
	a.Logger.StatusMessage("Pixels lit: %d; total commits planned: %d", cells, commits)

	if !a.Config.Apply {
		a.Logger.InfoToUser("Dry run only - pass -apply to create the commits")
		return nil
	}

	// Verify prerequisites
	if err := a.checkRequiredCommands(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v. Please install it and try again.\n", err)
		return err
	}

	if !a.isRepository(a.Config.RepoPath) {
		return internalErrors.ErrNotGitRepository
	}
	a.Logger.Info("Git repository verified")

	// Acquire resource lock
	if err := a.Locker.Acquire(); err != nil {
		// Locker.Acquire() already returns a properly wrapped error
		if internalErrors.Is(err, internalErrors.ErrAlreadyRunning) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrLockAcquisitionFailure, err.Error())
	}

	if err := a.Painter.Run(ctx, entries); err != nil {
		return err
	}

	a.Logger.Success("Painted %d cells with %d commits", cells, commits)

	if a.Config.Push {
		if err := a.Painter.Push(ctx); err != nil {
			return err
		}
	}

	return nil
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "contribart %s (%s) built on %s\n",
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// ShowLogo displays ASCII art logo
func (a *App) ShowLogo() {
	_, _ = fmt.Fprint(a.Stdout, constants.Logo, "\n")
	_, _ = fmt.Fprintln(a.Stdout, "")

	asciiArtWidth := 80
	padding := (asciiArtWidth - len(constants.Tagline)) / 2
	centeredTagline := fmt.Sprintf("%s%s", strings.Repeat(" ", padding), constants.Tagline)
	_, _ = fmt.Fprintln(a.Stdout, centeredTagline)
}

// checkRequiredCommands verifies git is available in PATH
func (a *App) checkRequiredCommands() error {
	_, err := a.execLookPath("git")
	if err != nil {
		return fmt.Errorf("git is not found in PATH")
	}
	return nil
}

// supportedLetters renders the glyph table's vocabulary for messages
func supportedLetters() string {
	letters := font.SupportedLetters()
	parts := make([]string, len(letters))
	for i, ch := range letters {
		parts[i] = string(ch)
	}
	return strings.Join(parts, ", ")
}

// Close releases resources held by the App
func (a *App) Close() error {
	var errs []error

	// Release lock if it exists
	if a.Locker != nil {
		if err := a.Locker.Release(); err != nil {
			if a.Logger != nil {
				a.Logger.Error("Failed to release lock during cleanup: %v", err)
			} else {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to release lock during cleanup: %v\n", err)
			}
			errs = append(errs, err)
		}
	}

	if a.Logger != nil {
		if l, ok := a.Logger.(*logger.DefaultLogger); ok && l != nil {
			if err := l.Close(); err != nil {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
