package setup

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"premake-setup/internal/logger"
)

// Runner starts a child process in dir and waits for it.
// It returns the exit code; err is non-nil when the process could not be
// started or exited non-zero. The exit code is -1 when it never ran.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (exitCode int, err error)
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner attached to the process's stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	logger.Debug("[DEBUG] Running command: %s %s (in %s)\n", name, strings.Join(args, " "), dir)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), err
	}
	return -1, err
}
