package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sambabib/dumphals/pkg/runner"
)

// StderrError is returned when hidl-gen succeeds but writes to stderr.
type StderrError struct {
	Args   []string
	Stderr string
}

func (e *StderrError) Error() string {
	return fmt.Sprintf("`%s` has written to stderr:\n%s", strings.Join(e.Args, " "), e.Stderr)
}

// DependencyGenerator lists transitive interface dependencies with hidl-gen.
type DependencyGenerator struct {
	Path         string   // location of hidl-gen
	PackageRoots []string // PACKAGE:PATH pairs passed through as -r
	Runner       runner.Runner
}

// NewDependencyGenerator creates a DependencyGenerator that runs the binary at path.
func NewDependencyGenerator(path string, packageRoots []string, r runner.Runner) *DependencyGenerator {
	return &DependencyGenerator{Path: path, PackageRoots: packageRoots, Runner: r}
}

// Args builds the hidl-gen argument list for interfaces.
func (g *DependencyGenerator) Args(interfaces []string) []string {
	args := []string{"-Ldependencies"}
	if len(g.PackageRoots) > 0 {
		args = append(args, "-R")
		for _, root := range g.PackageRoots {
			args = append(args, "-r", root)
		}
	}
	return append(args, interfaces...)
}

// Dependencies returns every interface referenced by interfaces.
// hidl-gen is expected to be silent on stderr; any output there is an error.
func (g *DependencyGenerator) Dependencies(ctx context.Context, interfaces []string) ([]string, error) {
	res, err := runner.Check(ctx, g.Runner, g.Path, g.Args(interfaces)...)
	if err != nil {
		return nil, err
	}
	if res.Stderr != "" {
		return nil, &StderrError{Args: res.Args, Stderr: res.Stderr}
	}
	return fields(res.Stdout), nil
}
