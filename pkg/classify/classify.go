// File: pkg/classify/classify.go

// Package classify decides which directories are pruned and which files are
// admitted into a snapshot.
//
// Directory decisions, in order: virtual-environment or dependency root,
// excluded root-relative path, excluded directory name. File decisions, in
// order: essential document (admits immediately), excluded name, wildcard
// pattern, library heuristics, generated JSON heuristics, size and line
// limits, and finally the allowed name/extension tables.
package classify

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"projectsnap/pkg/rules"
)

// ChunkSize is the read size used when counting lines.
const ChunkSize = 8192

// Classifier applies a RuleSet to paths under one root.
// All paths handed to it are root-relative with forward slashes.
type Classifier struct {
	rules  *rules.RuleSet
	fs     afero.Fs
	root   string
	logger *zap.Logger
}

// New creates a Classifier for the tree rooted at root on fs.
func New(rs *rules.RuleSet, fs afero.Fs, root string, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{rules: rs, fs: fs, root: root, logger: logger}
}

// PruneDir decides whether the directory at rel, and everything beneath it, is skipped.
func (c *Classifier) PruneDir(rel string) Decision {
	rel = cleanRel(rel)
	name := path.Base(rel)

	if detail, ok := c.envRoot(rel, name); ok {
		return exclude(EnvRoot, detail)
	}
	if ok, p := c.rules.ExcludedPaths.MatchWithPattern(rel); ok {
		return exclude(ExcludedPath, strings.TrimPrefix(p.Line, "/"))
	}
	if c.rules.ExcludedDirs.Has(name) {
		return exclude(ExcludedDir, name)
	}
	return admit(Admitted)
}

// AdmitFile decides whether the file at rel is included. size is the file's
// length in bytes as reported by the walker.
func (c *Classifier) AdmitFile(rel string, size int64) Decision {
	rel = cleanRel(rel)
	name := path.Base(rel)
	lowerName := strings.ToLower(name)

	for _, doc := range c.rules.EssentialDocs {
		if rel == doc || strings.HasSuffix(rel, doc) {
			return admit(Essential)
		}
	}

	if c.rules.ExcludedFiles.Has(name) {
		return exclude(ExcludedName, name)
	}
	if ok, p := c.rules.FilePatterns.MatchWithPattern(lowerName); ok {
		return exclude(ExcludedPattern, p.Line)
	}
	if detail, ok := c.library(rel, lowerName); ok {
		return exclude(Library, detail)
	}
	if detail, ok := c.generatedJSON(rel, lowerName); ok {
		return exclude(GeneratedJSON, detail)
	}
	if d, ok := c.oversized(rel, lowerName, size); ok {
		return d
	}

	if c.rules.AllowedFilenames.Has(name) {
		return admit(Admitted)
	}
	if c.rules.AllowedExtensions.Has(strings.ToLower(path.Ext(name))) {
		return admit(Admitted)
	}
	return exclude(DisallowedType, path.Ext(name))
}

// envRoot reports whether rel is a virtual environment or dependency-manager root.
func (c *Classifier) envRoot(rel, name string) (string, bool) {
	for _, segment := range strings.Split(rel, "/") {
		if segment == rules.DependencyDir {
			return rules.DependencyDir, true
		}
	}

	if c.exists(path.Join(rel, rules.VenvConfig)) {
		return rules.VenvConfig, true
	}

	lowerName := strings.ToLower(name)
	for _, token := range c.rules.VenvTokens {
		if lowerName != token && !strings.HasPrefix(lowerName, token+"_") && !strings.HasPrefix(lowerName, token+"-") {
			continue
		}
		for _, marker := range c.rules.VenvMarkers {
			if c.matches(path.Join(rel, marker)) {
				return marker, true
			}
		}
		break
	}
	return "", false
}

// library reports whether the file looks like vendored third-party code.
func (c *Classifier) library(rel, lowerName string) (string, bool) {
	for _, token := range c.rules.LibraryTokens {
		if strings.Contains(lowerName, token) {
			return token, true
		}
	}
	for _, re := range c.rules.VersionPatterns {
		if re.MatchString(lowerName) {
			return re.String(), true
		}
	}
	for _, suffix := range c.rules.BundleSuffixes {
		if strings.HasSuffix(lowerName, suffix) {
			return suffix, true
		}
	}
	for _, segment := range strings.Split(strings.ToLower(rel), "/") {
		if c.rules.LibraryPathSegments.Has(segment) {
			return segment, true
		}
	}
	return "", false
}

// generatedJSON reports whether a .json file looks like machine-generated output.
func (c *Classifier) generatedJSON(rel, lowerName string) (string, bool) {
	if !strings.HasSuffix(lowerName, ".json") {
		return "", false
	}
	for _, segment := range strings.Split(strings.ToLower(rel), "/") {
		if c.rules.OutputJSONSegments.Has(segment) {
			return segment, true
		}
	}
	for _, suffix := range c.rules.OutputJSONSuffixes {
		if strings.HasSuffix(lowerName, suffix) {
			return suffix, true
		}
	}
	for _, re := range c.rules.TimestampPatterns {
		if re.MatchString(lowerName) {
			return re.String(), true
		}
	}
	return "", false
}

// oversized applies the size limit, then the line limit. Primary entry points
// are spared the line limit only.
func (c *Classifier) oversized(rel, lowerName string, size int64) (Decision, bool) {
	if datasize.ByteSize(size) > c.rules.MaxFileSize {
		c.logger.Debug("Skipping large file",
			zap.String("path", rel),
			zap.String("size", datasize.ByteSize(size).HumanReadable()))
		return exclude(TooLarge, strconv.FormatInt(size, 10)), true
	}

	lines, err := c.countLines(rel)
	if err != nil {
		// Unreadable files are left to the collector, which records the error inline.
		c.logger.Debug("Could not count lines", zap.String("path", rel), zap.Error(err))
		return Decision{}, false
	}
	if lines <= c.rules.MaxLines {
		return Decision{}, false
	}
	for _, token := range c.rules.PrimaryTokens {
		if strings.Contains(lowerName, token) {
			return Decision{}, false
		}
	}

	c.logger.Debug("Skipping long file", zap.String("path", rel), zap.Int("lines", lines))
	return exclude(TooLong, strconv.Itoa(lines)), true
}

// countLines counts lines the way a line iterator would: a trailing fragment
// without a newline still counts as a line.
func (c *Classifier) countLines(rel string) (int, error) {
	f, err := c.fs.Open(c.abs(rel))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := bufio.NewReaderSize(f, ChunkSize)
	buf := make([]byte, ChunkSize)
	lines := 0
	partial := false
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			lines += bytes.Count(buf[:n], []byte{'\n'})
			partial = buf[n-1] != '\n'
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", rel, err)
		}
	}
	if partial {
		lines++
	}
	return lines, nil
}

func (c *Classifier) exists(rel string) bool {
	ok, err := afero.Exists(c.fs, c.abs(rel))
	return err == nil && ok
}

func (c *Classifier) matches(relGlob string) bool {
	found, err := afero.Glob(c.fs, c.abs(relGlob))
	return err == nil && len(found) > 0
}

func (c *Classifier) abs(rel string) string {
	return filepath.Join(c.root, filepath.FromSlash(rel))
}

func cleanRel(rel string) string {
	rel = path.Clean(filepath.ToSlash(rel))
	return strings.TrimPrefix(rel, "./")
}
