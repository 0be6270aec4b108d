// File: pkg/combine/combine.go

// Package combine produces the project snapshot: it walks the tree once,
// reads every admitted file, balances the files across the requested number
// of parts and writes one annotated document per part.
package combine

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"projectsnap/pkg/classify"
	"projectsnap/pkg/walk"
)

// Run orchestrates a snapshot of args.Root.
//
// The whole tree is discovered and every admitted file read before any output
// is written. Write failures of individual parts do not stop the others; they
// are returned together, alongside the report.
func Run(args Arguments, opts Options, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults(args)

	startTime := opts.Clock.Now()

	root, err := filepath.Abs(args.Root)
	if err != nil {
		logger.Error("Failed to resolve directory path", zap.String("root", args.Root), zap.Error(err))
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Info("Starting snapshot", zap.String("root", root), zap.Int("parts", args.Parts))

	report := &Report{Root: root}

	classifier := classify.New(opts.Rules, opts.Fs, root, logger)
	walker := walk.New(opts.Fs, classifier, logger)
	sel := newSelection(&report.Stats, logger)
	tree := NewTreeBuilder()

	if err := walker.Walk(root, walk.Chain(sel.Visit, tree.Visit)); err != nil {
		logger.Error("Failed to walk project tree", zap.String("root", root), zap.Error(err))
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	if len(sel.paths) == 0 {
		logger.Warn("No files to process after filtering")
	}

	var progress Progress
	if opts.Progress != nil {
		progress = opts.Progress(len(sel.paths))
	}
	records := NewCollector(opts.Fs, root, logger).ProcessFiles(sel.paths, progress)
	for _, rec := range records {
		if rec.Err != nil {
			report.Stats.ReadErrors++
		}
	}
	report.Stats.Processed = len(records)

	report.Parts, err = Distribute(records, args.Parts)
	if err != nil {
		return nil, err
	}
	for _, part := range report.Parts {
		logger.Debug("Part assignment",
			zap.Int("part", part.Index),
			zap.Int("files", len(part.Records)),
			zap.Int("sizeBytes", part.Size))
	}

	report.Outputs, report.WriteErr = NewWriter(opts.Fs, opts.Clock, logger).WriteParts(root, report.Parts, tree.Render())

	logger.Info("Snapshot completed",
		zap.Int("processed", report.Stats.Processed),
		zap.Int("skipped", report.Stats.Skipped),
		zap.Int("readErrors", report.Stats.ReadErrors),
		zap.Int("prunedEnvDirs", report.Stats.PrunedEnvDirs),
		zap.Int("prunedNodeModules", report.Stats.PrunedNodeModules),
		zap.Int("partsWritten", len(report.Outputs)),
		zap.Duration("elapsed", opts.Clock.Since(startTime)))

	if report.WriteErr != nil {
		logger.Error("Some output parts could not be written", zap.Error(report.WriteErr))
		return report, fmt.Errorf("failed to write output: %w", report.WriteErr)
	}
	return report, nil
}
