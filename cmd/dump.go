package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/sambabib/dumphals/pkg/analyzer"
	"github.com/sambabib/dumphals/pkg/config"
	"github.com/sambabib/dumphals/pkg/logger"
	"github.com/sambabib/dumphals/pkg/output"
	"github.com/sambabib/dumphals/pkg/runner"
	"github.com/spf13/cobra"
)

type dumpOptions struct {
	verbose       bool
	pretty        bool
	hidlGen       string
	analyzeMatrix string
	matrices      []string
	packageRoots  []string
	format        string // output format: json or text
	configPath    string
}

func (o *dumpOptions) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Verbose mode: echo every external command to stderr")
	f.BoolVar(&o.pretty, "pretty", false, "Print pretty JSON")
	f.StringVar(&o.hidlGen, "hidl-gen", "", "Location of hidl-gen (required)")
	f.StringVar(&o.analyzeMatrix, "analyze-matrix", "", "Location of analyze_matrix (required)")
	f.StringArrayVar(&o.matrices, "compatibility-matrix", nil,
		"Location of framework compatibility matrices; one or more FILE values (required)")
	f.StringArrayVar(&o.packageRoots, "package-root", nil,
		"Package roots provided to hidl-gen, one or more PACKAGE:PATH values, e.g. android.hardware:hardware/interfaces")
	f.StringVarP(&o.format, "format", "f", "json", "Output format: json or text")
	f.StringVar(&o.configPath, "config", "", "Config file (default: "+config.FileName+" in the current directory, its parents or $HOME)")
}

// merge fills in values not given on the command line from cfg.
func (o *dumpOptions) merge(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if !f.Changed("verbose") {
		o.verbose = cfg.Verbose
	}
	if !f.Changed("pretty") {
		o.pretty = cfg.Output.Pretty
	}
	if !f.Changed("hidl-gen") {
		o.hidlGen = cfg.Tools.HidlGen
	}
	if !f.Changed("analyze-matrix") {
		o.analyzeMatrix = cfg.Tools.AnalyzeMatrix
	}
	if !f.Changed("package-root") {
		o.packageRoots = cfg.PackageRoots
	}
	if !f.Changed("format") {
		o.format = cfg.Output.Format
	}
}

func (o *dumpOptions) validate() error {
	var missing []string
	if o.hidlGen == "" {
		missing = append(missing, `"hidl-gen"`)
	}
	if o.analyzeMatrix == "" {
		missing = append(missing, `"analyze-matrix"`)
	}
	if len(o.matrices) == 0 {
		missing = append(missing, `"compatibility-matrix"`)
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}
	if o.format != "json" && o.format != "text" {
		return fmt.Errorf("unsupported output format %q (want json or text)", o.format)
	}
	return nil
}

func (o *dumpOptions) expandPaths() error {
	var err error
	if o.hidlGen, err = config.ExpandPath(o.hidlGen); err != nil {
		return err
	}
	if o.analyzeMatrix, err = config.ExpandPath(o.analyzeMatrix); err != nil {
		return err
	}
	for i, m := range o.matrices {
		if o.matrices[i], err = config.ExpandPath(m); err != nil {
			return err
		}
	}
	return nil
}

func runDump(cmd *cobra.Command, o *dumpOptions) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.LoadConfig(o.configPath, wd)
	if err != nil {
		return err
	}
	o.merge(cmd, cfg)
	if len(o.matrices) == 0 {
		o.matrices = cfg.CompatibilityMatrices
	}
	if err := o.validate(); err != nil {
		return err
	}
	if err := o.expandPaths(); err != nil {
		return err
	}
	logger.SetVerbose(o.verbose)

	r := runner.NewExecRunner()
	collector := analyzer.NewCollector(
		analyzer.NewMatrixAnalyzer(o.analyzeMatrix, r),
		analyzer.NewDependencyGenerator(o.hidlGen, o.packageRoots, r),
	)

	levels, err := collector.Collect(cmd.Context(), o.matrices)
	if err != nil {
		return err
	}
	report, err := analyzer.Partition(levels)
	if err != nil {
		return fmt.Errorf("failed to order levels: %w", err)
	}
	logger.Debugf("Collected %d levels from %d files", len(report.Entries), len(o.matrices))

	// Render fully before touching stdout so a failure leaves it empty.
	var buf bytes.Buffer
	if o.format == "text" {
		err = output.PrintTextReport(&buf, report)
	} else {
		err = output.WriteJSONReport(&buf, report, o.pretty)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
