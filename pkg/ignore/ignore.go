// Package ignore compiles glob-style patterns into anchored regular expressions.
//
// Patterns follow the familiar ignore-file dialect: `*` matches within one path
// segment, `?` matches a single character, `**` spans segments, a leading `/`
// anchors the pattern to the root and a trailing `/` is accepted and dropped.
// Every pattern also matches everything beneath a matched path.
package ignore

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Placeholders keep the `**` expansions out of reach of the single-star and
// question-mark passes.
const (
	doubleStarMiddle   = "\x00DSM\x00"
	doubleStarTrailing = "\x00DST\x00"
	doubleStarLeading  = "\x00DSL\x00"
)

// Precompiled regular expressions used in pattern parsing.
var (
	doubleStarMiddlePattern   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailingPattern = regexp.MustCompile(`/\*\*$`)
	doubleStarLeadingPattern  = regexp.MustCompile(`^\*\*/`)
)

// Pattern encapsulates a compiled regular expression and the line it came from.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled regular expression for the pattern.
	Line   string         // Original pattern line.
	Index  int            // Position in the source list (0-based).
}

// Matcher represents an ordered collection of compiled patterns.
type Matcher struct {
	patterns []*Pattern
}

// Compile compiles a set of pattern lines. Blank lines and `#` comments are skipped.
func Compile(lines ...string) (*Matcher, error) {
	m := &Matcher{patterns: make([]*Pattern, 0, len(lines))}
	for i, line := range lines {
		re, err := parsePatternLine(line)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", line, err)
		}
		if re == nil {
			continue
		}
		m.patterns = append(m.patterns, &Pattern{Regexp: re, Line: line, Index: i})
	}
	return m, nil
}

// MustCompile is like Compile but panics on an invalid pattern.
// It is meant for the fixed tables built at startup.
func MustCompile(lines ...string) *Matcher {
	m, err := Compile(lines...)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Match reports whether the path matches any pattern.
func (m *Matcher) Match(path string) bool {
	matched, _ := m.MatchWithPattern(path)
	return matched
}

// MatchWithPattern checks the path against the patterns in order and returns
// the first pattern that matched.
func (m *Matcher) MatchWithPattern(path string) (bool, *Pattern) {
	normalizedPath := normalizePath(path)
	for _, pattern := range m.patterns {
		if pattern.Regexp.MatchString(normalizedPath) {
			return true, pattern
		}
	}
	return false, nil
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// parsePatternLine turns one pattern line into a compiled regex.
// Returns nil if the line is a comment or empty.
func parsePatternLine(line string) (*regexp.Regexp, error) {
	trimmedLine := strings.TrimSpace(line)

	// Ignore empty lines and comments.
	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return nil, nil
	}

	rooted := strings.HasPrefix(trimmedLine, "/")
	body := strings.TrimSuffix(strings.TrimPrefix(trimmedLine, "/"), "/")

	// Escape special characters and convert wildcards.
	escaped := escapeSpecialChars(body)
	escaped = handleDoubleStarPatterns(escaped)
	escaped = wildcardToRegex(escaped)
	escaped = expandDoubleStars(escaped)

	return regexp.Compile(anchorPattern(escaped, rooted))
}

// escapeSpecialChars escapes regex special characters except for `*`, `?`, and `/`.
func escapeSpecialChars(pattern string) string {
	specialChars := `\.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns swaps '**' segments for placeholders.
func handleDoubleStarPatterns(pattern string) string {
	pattern = doubleStarMiddlePattern.ReplaceAllLiteralString(pattern, doubleStarMiddle)
	pattern = doubleStarTrailingPattern.ReplaceAllLiteralString(pattern, doubleStarTrailing)
	pattern = doubleStarLeadingPattern.ReplaceAllLiteralString(pattern, doubleStarLeading)
	return pattern
}

// wildcardToRegex converts `*` and `?` wildcards to regex equivalents.
func wildcardToRegex(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "*", `[^/]*`)
	return strings.ReplaceAll(pattern, "?", `[^/]`)
}

// expandDoubleStars replaces the placeholders with their regex equivalents.
func expandDoubleStars(pattern string) string {
	return strings.NewReplacer(
		doubleStarMiddle, `(/|/.+/)`,
		doubleStarTrailing, `(/.*)?`,
		doubleStarLeading, `(.*/)?`,
	).Replace(pattern)
}

// anchorPattern anchors the regex pattern to match the full path.
func anchorPattern(pattern string, rooted bool) string {
	pattern += "(/.*)?$"
	if rooted {
		return "^" + pattern
	}
	return "^(|.*/)" + pattern
}
