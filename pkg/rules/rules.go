// File: pkg/rules/rules.go

// Package rules holds the fixed admission policy for a snapshot run.
//
// A RuleSet is built once by Default and never mutated afterwards; the
// classifier, walker and collector all receive the same value. Tests build
// their own RuleSet literals to exercise single rules in isolation.
package rules

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/c2h5oh/datasize"

	"projectsnap/pkg/ignore"
)

// OutputTemplate names the generated part files.
const OutputTemplate = "concatenated_scripts_part%d.txt"

// Defaults for a run.
const (
	DefaultParts = 3
	MaxLines     = 2000
	MaxFileSize  = 2 * datasize.MB
)

// DependencyDir is pruned wherever it appears in a path.
const DependencyDir = "node_modules"

// VenvConfig marks a Python virtual environment root on its own.
const VenvConfig = "pyvenv.cfg"

// Set is a string set with O(1) lookups.
type Set map[string]struct{}

// NewSet builds a Set from the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in the set.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// RuleSet is the complete, immutable classification policy.
type RuleSet struct {
	ExcludedFiles       Set             // Literal filenames never admitted.
	ExcludedDirs        Set             // Literal directory names that are pruned.
	ExcludedPaths       *ignore.Matcher // Root-relative directory paths pruned with everything beneath.
	FilePatterns        *ignore.Matcher // Wildcard patterns matched against the lowercased filename.
	AllowedExtensions   Set             // Lowercased extensions (with dot) that may be admitted.
	AllowedFilenames    Set             // Literal filenames that may be admitted regardless of extension.
	EssentialDocs       []string        // Root-relative suffixes admitted before any other rule.
	VenvTokens          []string        // Directory names (or name prefixes) that may hold a virtual environment.
	VenvMarkers         []string        // Relative globs proving a token-named directory is a virtual environment.
	LibraryTokens       []string        // Substrings of a filename that signal a third-party library.
	VersionPatterns     []*regexp.Regexp
	BundleSuffixes      []string        // Minified or bundled filename suffixes.
	LibraryPathSegments Set             // Path segments that signal vendored code.
	OutputJSONSegments  Set             // Path segments that signal generated JSON.
	OutputJSONSuffixes  []string        // Filename suffixes that signal generated JSON.
	TimestampPatterns   []*regexp.Regexp
	PrimaryTokens       []string // Filename substrings that waive the line-count limit.
	MaxLines            int
	MaxFileSize         datasize.ByteSize
}

// OutputName returns the filename of the given 1-based part.
func OutputName(part int) string {
	return fmt.Sprintf(OutputTemplate, part)
}

// Default builds the standard rule set. selfName is the running executable,
// excluded so a binary dropped into the tree is never ingested; parts decides
// how many output filenames are reserved.
func Default(selfName string, parts int) *RuleSet {
	excludedFiles := NewSet(defaultExcludedFiles...)
	for i := 1; i <= max(parts, DefaultParts); i++ {
		excludedFiles[OutputName(i)] = struct{}{}
	}
	if selfName != "" {
		excludedFiles[filepath.Base(selfName)] = struct{}{}
	}

	excludedPaths := make([]string, 0, len(defaultExcludedPaths))
	for _, p := range defaultExcludedPaths {
		excludedPaths = append(excludedPaths, "/"+p)
	}

	return &RuleSet{
		ExcludedFiles:       excludedFiles,
		ExcludedDirs:        NewSet(defaultExcludedDirs...),
		ExcludedPaths:       ignore.MustCompile(excludedPaths...),
		FilePatterns:        ignore.MustCompile(defaultFilePatterns...),
		AllowedExtensions:   NewSet(".js", ".jsx", ".html", ".css", ".py", ".md", ".json", ".toml", ".yaml", ".yml", ".gitignore"),
		AllowedFilenames:    NewSet("requirements.txt", "setup.py", "pyproject.toml", "Dockerfile", "docker-compose.yml", "docker-compose.yaml"),
		EssentialDocs:       []string{"README.md", "config.py", "settings.py"},
		VenvTokens:          []string{"venv", "virtualenv", "env", "python3", "python", ".venv", ".env", "venv_", "env_"},
		VenvMarkers:         []string{"bin/activate", "Scripts/activate.bat", "lib/python*"},
		LibraryTokens:       defaultLibraryTokens,
		VersionPatterns:     mustCompileAll(`v\d+\.\d+`, `_v\d+\.\d+`, `-v\d+\.\d+`, `\d+\.\d+\.\d+`, `_\d+\.\d+\.\d+`, `-\d+\.\d+\.\d+`, `\.min\.`, `\.bundle\.`),
		BundleSuffixes:      []string{".min.js", ".min.css", ".bundle.js", ".bundle.css", ".map", ".min.map", ".bundle.map"},
		LibraryPathSegments: NewSet("lib", "libs", "library", "libraries", "vendor", "vendors", "third-party", "third_party", "external", "dependencies", "modules", "packages", "assets", "static", "public", "dist", "build", "compiled", "generated"),
		OutputJSONSegments:  NewSet("output", "outputs", "results", "processed", "generated", "extracted", "cache", "temp", "tmp", "backup", "export", "reports", "logs", "artifacts", "data", "json"),
		OutputJSONSuffixes:  []string{"_processed.json", "_extracted.json", "_output.json", "_results.json", "_cache.json", "_temp.json", "_backup.json", "_export.json", "_response.json", "_data.json", "_metadata.json"},
		TimestampPatterns:   mustCompileAll(`\d{4}-\d{2}-\d{2}`, `\d{8}`, `\d{4}\d{2}\d{2}_\d{6}`, `_\d{13}\.json$`),
		PrimaryTokens:       []string{"config", "settings", "main", "app", "index"},
		MaxLines:            MaxLines,
		MaxFileSize:         MaxFileSize,
	}
}

func mustCompileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}
