// File: pkg/combine/output.go
package combine

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"projectsnap/pkg/rules"
)

const (
	// timestampLayout is the format of the "Generated:" line.
	timestampLayout = "%Y-%m-%d %H:%M:%S"
	createFlags     = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
)

var timestampFormat = mustStrftime(timestampLayout)

var sectionSeparator = "\n\n" + equalBanner + "\n\n"

// Writer renders parts and writes them next to the scanned project.
type Writer struct {
	fs     afero.Fs
	clock  clockwork.Clock
	logger *zap.Logger
}

// NewWriter creates a Writer.
func NewWriter(fs afero.Fs, clock clockwork.Clock, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{fs: fs, clock: clock, logger: logger}
}

// WriteParts writes one document per part into root. The tree goes into part 1
// only; the file index goes into every part. A failing part is logged and the
// remaining parts are still attempted. It returns the paths that were written
// and the combined error of those that were not.
func (w *Writer) WriteParts(root string, parts []*OutputPart, tree string) ([]string, error) {
	generated := timestampFormat.FormatString(w.clock.Now())
	index := renderIndex(parts)

	var (
		written []string
		errs    error
	)
	for _, part := range parts {
		outputPath := filepath.Join(root, rules.OutputName(part.Index))
		sections := renderPart(part, len(parts), generated, root, tree, index)
		if err := w.writeCombinedFile(outputPath, sections); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("part %d: %w", part.Index, err))
			continue
		}
		written = append(written, outputPath)
		w.logger.Info("Wrote output part",
			zap.Int("part", part.Index),
			zap.String("file", outputPath),
			zap.Int("files", len(part.Records)),
			zap.Int("sizeBytes", part.Size))
	}
	return written, errs
}

// renderPart returns the sections of one document, to be joined with newlines.
func renderPart(part *OutputPart, total int, generated, root, tree, index string) []string {
	header := fmt.Sprintf("# Concatenated Project Code - Part %d of %d\n# Generated: %s\n# Root Directory: %s\n%s\n",
		part.Index, total, generated, root, equalBanner)

	sections := []string{header}
	if part.Index == 1 {
		sections = append(sections, tree, sectionSeparator)
	}
	sections = append(sections, index, sectionSeparator)
	for _, rec := range part.Records {
		sections = append(sections, rec.Block)
	}
	return sections
}

// renderIndex lists which files landed in which part.
func renderIndex(parts []*OutputPart) string {
	lines := []string{"# File Index - Which Files Are in Which Parts", hashBanner}
	for _, part := range parts {
		lines = append(lines, fmt.Sprintf("\n## Part %d (%d files):", part.Index, len(part.Records)))
		for _, rec := range part.Records {
			lines = append(lines, "  - "+rec.Path)
		}
	}
	return strings.Join(lines, "\n")
}

// writeCombinedFile writes the newline-joined sections to outputPath.
func (w *Writer) writeCombinedFile(outputPath string, sections []string) (err error) {
	w.logger.Debug("Writing combined content to output file", zap.String("file", outputPath))

	outFile, err := w.fs.OpenFile(outputPath, createFlags, 0o644)
	if err != nil {
		w.logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			w.logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			err = multierr.Append(err, closeErr)
		}
	}()

	writer := bufio.NewWriter(outFile)
	for i, section := range sections {
		if i > 0 {
			if err := writer.WriteByte('\n'); err != nil {
				return w.writeFailed(outputPath, err)
			}
		}
		if _, err := writer.WriteString(section); err != nil {
			return w.writeFailed(outputPath, err)
		}
	}

	if err := writer.Flush(); err != nil {
		w.logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func (w *Writer) writeFailed(outputPath string, err error) error {
	w.logger.Error("Failed to write content to combined file", zap.String("file", outputPath), zap.Error(err))
	return fmt.Errorf("failed to write content: %w", err)
}

func mustStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}
