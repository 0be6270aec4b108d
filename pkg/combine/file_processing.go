// File: pkg/combine/file_processing.go
package combine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Collector reads admitted files and turns them into records.
type Collector struct {
	fs     afero.Fs
	root   string
	logger *zap.Logger
}

// NewCollector creates a Collector reading paths relative to root from fs.
func NewCollector(fs afero.Fs, root string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{fs: fs, root: root, logger: logger}
}

// ProcessFiles reads every path in order. A file that cannot be read still
// yields a record carrying an inline error block.
func (c *Collector) ProcessFiles(paths []string, progress Progress) []*FileRecord {
	records := make([]*FileRecord, 0, len(paths))
	for _, rel := range paths {
		records = append(records, c.ProcessSingleFile(rel))
		if progress != nil {
			_ = progress.Add(1)
		}
	}
	if progress != nil {
		_ = progress.Finish()
	}
	return records
}

// ProcessSingleFile reads and formats the content of a single file.
func (c *Collector) ProcessSingleFile(rel string) *FileRecord {
	absPath := filepath.Join(c.root, filepath.FromSlash(rel))
	c.logger.Debug("Processing file", zap.String("path", rel))

	data, err := afero.ReadFile(c.fs, absPath)
	if err != nil {
		c.logger.Warn("Failed to read file", zap.String("path", rel), zap.Error(err))
		block := formatErrorBlock(rel, err)
		return &FileRecord{
			Path:  rel,
			Block: block,
			Size:  len(block),
			Err:   fmt.Errorf("error reading file %s: %w", rel, err),
		}
	}

	// Undecodable bytes are dropped rather than failing the file.
	content := strings.TrimSpace(strings.ToValidUTF8(string(data), ""))

	style, known := commentStyleFor(filepath.Base(rel))
	if !known {
		c.logger.Warn("Unknown file type, assuming # comments", zap.String("path", rel))
	}

	block := formatBlock(rel, applyHeader(content, rel, style))
	c.logger.Debug("Successfully read file content",
		zap.String("path", rel),
		zap.Int("contentSizeBytes", len(data)),
		zap.Int("blockSizeBytes", len(block)))

	return &FileRecord{
		Path:    rel,
		Content: content,
		Block:   block,
		Size:    len(block),
	}
}
