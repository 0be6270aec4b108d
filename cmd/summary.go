package cmd

import (
	"io"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/fatih/color"

	"projectsnap/pkg/combine"
	"projectsnap/pkg/rules"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
)

// printSummary writes the end-of-run summary: counts, then one line per part.
func printSummary(w io.Writer, report *combine.Report) {
	s := report.Stats
	titleColor.Fprintf(w, "Snapshot of %s\n", report.Root)
	okColor.Fprintf(w, "  Processed %d files\n", s.Processed)
	if s.ReadErrors > 0 {
		warnColor.Fprintf(w, "  %d files could not be read\n", s.ReadErrors)
	}
	warnColor.Fprintf(w, "  Skipped %d files, %d virtual environments, %d node_modules directories\n",
		s.Skipped, s.PrunedEnvDirs, s.PrunedNodeModules)

	written := make(map[string]bool, len(report.Outputs))
	for _, out := range report.Outputs {
		written[filepath.Base(out)] = true
	}
	for _, part := range report.Parts {
		name := rules.OutputName(part.Index)
		line := okColor
		if !written[name] {
			line = errColor
		}
		line.Fprintf(w, "  Part %d: %d files, %s -> %s\n",
			part.Index, len(part.Records), datasize.ByteSize(part.Size).HumanReadable(), name)
	}
	if report.WriteErr != nil {
		errColor.Fprintf(w, "  Write errors: %v\n", report.WriteErr)
	}
}
