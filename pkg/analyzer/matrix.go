package analyzer

import (
	"context"
	"strings"

	"github.com/sambabib/dumphals/pkg/logger"
	"github.com/sambabib/dumphals/pkg/runner"
)

// MatrixAnalyzer queries a compatibility matrix through the analyze_matrix tool.
type MatrixAnalyzer struct {
	Path   string // location of analyze_matrix
	Runner runner.Runner
}

// NewMatrixAnalyzer creates a MatrixAnalyzer that runs the binary at path.
func NewMatrixAnalyzer(path string, r runner.Runner) *MatrixAnalyzer {
	return &MatrixAnalyzer{Path: path, Runner: r}
}

// Level returns the level declared by the matrix at file. ok is false when
// analyze_matrix rejects the file, i.e. it is not a compatibility matrix.
func (m *MatrixAnalyzer) Level(ctx context.Context, file string) (lvl string, ok bool, err error) {
	res, err := m.Runner.Run(ctx, m.Path, "--input", file, "--level")
	if err != nil {
		return "", false, err
	}
	if res.ExitCode != 0 {
		logger.Debugf("Skipping %s: not a compatibility matrix (exit status %d)", file, res.ExitCode)
		return "", false, nil
	}
	// stderr may contain a warning when the level is empty
	return strings.TrimSpace(res.Stdout), true, nil
}

// Interfaces returns the top-level interfaces listed by the matrix at file.
func (m *MatrixAnalyzer) Interfaces(ctx context.Context, file string) ([]string, error) {
	res, err := runner.Check(ctx, m.Runner, m.Path, "--input", file, "--interfaces")
	if err != nil {
		return nil, err
	}
	// stderr may contain a warning when there are no interfaces
	return fields(res.Stdout), nil
}
