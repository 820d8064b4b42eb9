package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/common"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/errors"
	"github.com/Nerdlin/nerdlin-contrib-art/internal/schedule"
)

// commitHour is the fixed time-of-day stamped on every commit so that
// repeated runs over the same cells produce identical timestamps
const commitHour = " 12:00:00 +0000"

// PainterConfig contains configuration for a painter instance
type PainterConfig struct {
	// Repository path
	RepoPath string

	// Commit settings
	Word        string
	FilePath    string
	AuthorName  string
	AuthorEmail string
	Intensity   int
	AllowEmpty  bool

	// Output configuration
	Verbose bool
}

// Painter creates the backdated commits that light up canvas cells
type Painter struct {
	config       PainterConfig
	logger       Logger
	executor     CommandExecutor
	commitsCount int
	startTime    time.Time
}

// Logger alias to common.Logger
type Logger = common.Logger

// NewPainter creates a new painter instance with default dependencies
func NewPainter(config PainterConfig, logger Logger) *Painter {
	return NewPainterWithDeps(config, logger, NewExecExecutor())
}

// NewPainterWithDeps creates a new painter instance with a custom executor
func NewPainterWithDeps(config PainterConfig, logger Logger, executor CommandExecutor) *Painter {
	return &Painter{
		config:       config,
		logger:       logger,
		executor:     executor,
		commitsCount: 0,
		startTime:    time.Now(),
	}
}

// IsRepository checks if the given path is inside a git work tree
func IsRepository(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree")
	executor := NewExecExecutor()
	return executor.Execute(cmd) == nil
}

// Run creates intensity commits for every schedule entry, in order.
// The first failure aborts the remaining schedule; cancellation is
// honored between commits, leaving whatever was already committed.
func (p *Painter) Run(ctx context.Context, entries []schedule.Entry) error {
	p.startTime = time.Now()

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			p.logger.Info("Received cancellation signal, stopping after %d commits", p.commitsCount)
			return ctx.Err()
		default:
		}

		for i := 0; i < p.config.Intensity; i++ {
			if err := p.commitForDate(entry.Date); err != nil {
				p.logger.Error("Failed on %s (commit %d of %d for that day): %v",
					entry.Date.Format("2006-01-02"), i+1, p.config.Intensity, err)
				return err
			}
		}

		p.logger.Info("Painted cell (%d,%d) on %s", entry.Row, entry.Column, entry.Date.Format("2006-01-02"))
	}

	return nil
}

// commitForDate appends to the tracking file, stages it and commits
// with author and committer dates overridden to the given day
func (p *Painter) commitForDate(date time.Time) error {
	day := date.Format("2006-01-02")

	if err := p.appendTrackingLine(day); err != nil {
		return err
	}

	addArgs := []string{p.config.FilePath}
	if err := p.runGitCommand(nil, "add", p.config.FilePath); err != nil {
		if errors.Is(err, errors.ErrGitOperationFailed) {
			return err
		}
		return errors.NewGitError("add", addArgs, err, "failed to stage tracking file")
	}

	message := fmt.Sprintf("contrib-art: %s pixel (%s)", p.config.Word, day)
	commitArgs := []string{"-m", message}
	if p.config.AllowEmpty {
		commitArgs = append(commitArgs, "--allow-empty")
	}

	dateStr := day + commitHour
	env := []string{
		"GIT_AUTHOR_DATE=" + dateStr,
		"GIT_COMMITTER_DATE=" + dateStr,
		"GIT_AUTHOR_NAME=" + p.config.AuthorName,
		"GIT_AUTHOR_EMAIL=" + p.config.AuthorEmail,
		"GIT_COMMITTER_NAME=" + p.config.AuthorName,
		"GIT_COMMITTER_EMAIL=" + p.config.AuthorEmail,
	}

	if err := p.runGitCommand(env, append([]string{"commit"}, commitArgs...)...); err != nil {
		if errors.Is(err, errors.ErrGitOperationFailed) {
			return err
		}
		return errors.NewGitError("commit", commitArgs, err, "failed to create commit")
	}

	p.commitsCount++
	return nil
}

// appendTrackingLine appends one log line for the given day to the tracking file
func (p *Painter) appendTrackingLine(day string) error {
	path := p.config.FilePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.config.RepoPath, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for tracking file %s", path)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open tracking file %s", path)
	}

	line := fmt.Sprintf("%s - %s pixel\n", day, p.config.Word)
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to append to tracking file %s", path)
	}

	return f.Close()
}

// Push pushes the painted commits to the default remote
func (p *Painter) Push(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := p.runGitCommand(nil, "push"); err != nil {
		if errors.Is(err, errors.ErrGitOperationFailed) {
			return err
		}
		return errors.NewGitError("push", nil, err, "failed to push commits")
	}

	p.logger.Success("Pushed commits to remote")
	return nil
}

// CommitsCount returns the number of commits created so far
func (p *Painter) CommitsCount() int {
	return p.commitsCount
}

// PrintSummary prints a summary of the painting session
func (p *Painter) PrintSummary() {
	duration := time.Since(p.startTime)
	minutes := int(duration.Minutes())
	seconds := int(duration.Seconds()) % 60

	p.logger.StatusMessage("")
	p.logger.StatusMessage("---------------------------------------------")
	p.logger.StatusMessage("📊 contribart Session Summary")
	p.logger.StatusMessage("---------------------------------------------")
	p.logger.StatusMessage("✅ Total commits made: %d", p.commitsCount)
	p.logger.StatusMessage("⏱️  Session duration: %dm %ds", minutes, seconds)
	p.logger.StatusMessage("📝 Tracking file: %s", p.config.FilePath)
	p.logger.StatusMessage("---------------------------------------------")
}

// runGitCommand executes a git command in the repository directory,
// with extraEnv appended to the inherited environment when non-nil
func (p *Painter) runGitCommand(extraEnv []string, args ...string) error {
	baseArgs := []string{"-C", p.config.RepoPath}
	cmd := exec.Command("git", append(baseArgs, args...)...)
	cmd.Dir = p.config.RepoPath
	if extraEnv != nil {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	return p.executor.Execute(cmd)
}
