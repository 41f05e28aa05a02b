package analyzer

import (
	"context"
	"fmt"

	"github.com/sambabib/dumphals/pkg/logger"
)

// Collector gathers the interfaces of each compatibility matrix by level.
type Collector struct {
	Matrix *MatrixAnalyzer
	Deps   *DependencyGenerator
}

// NewCollector creates a Collector.
func NewCollector(m *MatrixAnalyzer, d *DependencyGenerator) *Collector {
	return &Collector{Matrix: m, Deps: d}
}

// Collect processes files in order. Files that are not compatibility matrices,
// or that name no interfaces, are skipped. Any other tool failure aborts.
func (c *Collector) Collect(ctx context.Context, files []string) (LevelInterfaces, error) {
	result := LevelInterfaces{}
	for _, file := range files {
		lvl, ok, err := c.Matrix.Level(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read level of %s: %w", file, err)
		}
		if !ok {
			continue
		}

		interfaces, err := c.Matrix.Interfaces(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("failed to list interfaces of %s: %w", file, err)
		}
		if len(interfaces) == 0 {
			logger.Debugf("Skipping %s: no interfaces", file)
			continue
		}
		logger.Debugf("%s: level %q, %d top-level interfaces", file, lvl, len(interfaces))
		result.add(lvl, interfaces...)

		deps, err := c.Deps.Dependencies(ctx, interfaces)
		if err != nil {
			return nil, fmt.Errorf("failed to list dependencies of %s: %w", file, err)
		}
		result.add(lvl, deps...)
	}
	return result, nil
}
