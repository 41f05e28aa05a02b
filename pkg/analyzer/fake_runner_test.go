package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sambabib/dumphals/pkg/runner"
)

// fakeRunner answers commands from a table keyed by the joined command line.
type fakeRunner struct {
	responses map[string]runner.Result
	calls     []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: map[string]runner.Result{}}
}

func (f *fakeRunner) on(cmdline string, exitCode int, stdout, stderr string) {
	f.responses[cmdline] = runner.Result{ExitCode: exitCode, Stdout: stdout, Stderr: stderr}
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (*runner.Result, error) {
	full := append([]string{name}, args...)
	line := strings.Join(full, " ")
	f.calls = append(f.calls, line)
	res, ok := f.responses[line]
	if !ok {
		return nil, fmt.Errorf("unexpected command: %s", line)
	}
	res.Args = full
	return &res, nil
}
