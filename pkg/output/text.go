package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sambabib/dumphals/pkg/analyzer"
)

// PrintTextReport prints the report as a table, one row per level
func PrintTextReport(w io.Writer, report *analyzer.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) // minwidth, tabwidth, padding, padchar, flags

	fmt.Fprintln(tw, "LEVEL\tNEW\tINTERFACES")
	fmt.Fprintln(tw, "-----\t---\t----------")

	for _, e := range report.Entries {
		lvl := e.Level
		if lvl == "" {
			lvl = "(unspecified)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", lvl, len(e.Interfaces), strings.Join(e.Interfaces, " "))
	}

	return tw.Flush()
}
