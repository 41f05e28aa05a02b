package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sambabib/dumphals/pkg/logger"
)

// Result holds the outcome of a finished external command.
type Result struct {
	Args     []string // full command line, executable first
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandLine returns the command as it would be typed in a shell (without quoting).
func (r *Result) CommandLine() string {
	return strings.Join(r.Args, " ")
}

// Runner executes an external command and waits for it to finish.
// A non-zero exit status is reported through Result.ExitCode, not as an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// ExitError is returned by Check when a command exits with a non-zero status.
type ExitError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("`%s` returns %d", strings.Join(e.Args, " "), e.ExitCode)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the command, collects both output streams and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	full := append([]string{name}, args...)
	logger.Command(full)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Args:   full,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			res.ExitCode = exitErr.ExitCode()
			logger.Debugf("%s exited with status %d", name, res.ExitCode)
			return res, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("running `%s`: %w", res.CommandLine(), ctx.Err())
		}
		return nil, fmt.Errorf("running `%s`: %w", res.CommandLine(), err)
	}
	return res, nil
}

// Check runs the command and converts a non-zero exit status into an *ExitError.
func Check(ctx context.Context, r Runner, name string, args ...string) (*Result, error) {
	res, err := r.Run(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExitError{Args: res.Args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}
