package git

import (
	"bytes"
	"os/exec"

	"github.com/Nerdlin/nerdlin-contrib-art/internal/errors"
)

// CommandExecutor defines an interface for executing commands
type CommandExecutor interface {
	// Execute runs a command and returns its exit status as an error
	Execute(cmd *exec.Cmd) error

	// ExecuteWithOutput runs a command and returns its stdout
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		operation, args := splitCommand(cmd)
		wrappedErr := errors.Wrap(errors.ErrGitOperationFailed, err.Error())
		return errors.NewGitError(operation, args, wrappedErr, stderr.String())
	}
	return nil
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		operation, args := splitCommand(cmd)
		wrappedErr := errors.Wrap(errors.ErrGitOperationFailed, err.Error())
		return "", errors.NewGitError(operation, args, wrappedErr, stderr.String())
	}

	return stdout.String(), nil
}

// splitCommand extracts the executable name and its arguments for error reporting
func splitCommand(cmd *exec.Cmd) (string, []string) {
	if len(cmd.Args) == 0 {
		return "", nil
	}
	return cmd.Args[0], cmd.Args[1:]
}
