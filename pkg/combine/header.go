// File: pkg/combine/header.go
package combine

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	bannerWidth = 80
	// headerScanLines bounds how far into a file an existing header is looked for.
	headerScanLines = 10
)

var (
	hashBanner  = strings.Repeat("#", bannerWidth)
	equalBanner = strings.Repeat("=", bannerWidth)
)

// commentStyle describes how a file type writes comments. end is empty for
// line comments.
type commentStyle struct {
	start string
	end   string
}

var (
	slashStyle = &commentStyle{start: "// "}
	hashStyle  = &commentStyle{start: "# "}
	cssStyle   = &commentStyle{start: "/* ", end: " */"}
	htmlStyle  = &commentStyle{start: "<!-- ", end: " -->"}
	sqlStyle   = &commentStyle{start: "-- "}
)

// commentStyles maps lower-cased extensions to their comment style. A nil
// entry means the format has no comments and is left untouched.
var commentStyles = map[string]*commentStyle{
	".js":        slashStyle,
	".jsx":       slashStyle,
	".ts":        slashStyle,
	".tsx":       slashStyle,
	".css":       cssStyle,
	".py":        hashStyle,
	".sh":        hashStyle,
	".yaml":      hashStyle,
	".yml":       hashStyle,
	".toml":      hashStyle,
	".gitignore": hashStyle,
	".r":         hashStyle,
	".pl":        hashStyle,
	".rb":        hashStyle,
	".html":      htmlStyle,
	".xml":       htmlStyle,
	".vue":       htmlStyle,
	".svg":       htmlStyle,
	".md":        htmlStyle,
	".sql":       sqlStyle,
	".json":      nil,
}

// commentStyleFor returns the comment style for a file name. known is false
// when the type is not in the table and the hash style was assumed.
func commentStyleFor(name string) (style *commentStyle, known bool) {
	if style, ok := commentStyles[strings.ToLower(filepath.Ext(name))]; ok {
		return style, true
	}
	if strings.EqualFold(name, "requirements.txt") {
		return hashStyle, true
	}
	return hashStyle, false
}

// header renders the "File:" comment for rel. Block comments span three lines.
func (s *commentStyle) header(rel string) string {
	if s.end != "" {
		return s.start + "\n" + "File: " + rel + "\n" + s.end
	}
	return s.start + "File: " + rel
}

var (
	// headerPatterns match a previously inserted "File:" header in each
	// comment style, together with the blank lines that follow it.
	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^[ \t]*//[ \t]*File:[^\n]*(?:\n[ \t]*)*(?:\n|$)`),
		regexp.MustCompile(`(?m)^[ \t]*#[ \t]*File:[^\n]*(?:\n[ \t]*)*(?:\n|$)`),
		regexp.MustCompile(`(?ms)^[ \t]*/\*\s*File:.*?\*/[ \t]*(?:\n[ \t]*)*(?:\n|$)`),
		regexp.MustCompile(`(?ms)^[ \t]*<!--\s*File:.*?-->[ \t]*(?:\n[ \t]*)*(?:\n|$)`),
		regexp.MustCompile(`(?m)^[ \t]*--[ \t]*File:[^\n]*(?:\n[ \t]*)*(?:\n|$)`),
	}

	// bannerPattern matches a whole banner triplet left over from an earlier snapshot.
	bannerPattern = regexp.MustCompile(`(?m)^#{80}[ \t]*\n#[ \t]*File:[^\n]*\n#{80}[ \t]*(?:\n[ \t]*)*(?:\n|$)`)

	// headerLine recognizes a header line in any comment style and captures its path.
	headerLine = regexp.MustCompile(`^\s*(?://|#|/\*|<!--|--)?\s*File:\s*(.+?)\s*(?:\*/|-->)?\s*$`)
)

// hasHeader reports whether one of the first lines of content already names rel.
func hasHeader(content, rel string) bool {
	lines := strings.SplitN(content, "\n", headerScanLines+1)
	if len(lines) > headerScanLines {
		lines = lines[:headerScanLines]
	}
	for _, line := range lines {
		m := headerLine.FindStringSubmatch(line)
		if m != nil && m[1] == rel {
			return true
		}
	}
	return false
}

// stripHeaders removes every banner triplet and every "File:" header, in any
// comment style, from content.
func stripHeaders(content string) string {
	content = bannerPattern.ReplaceAllString(content, "")
	for _, re := range headerPatterns {
		content = re.ReplaceAllString(content, "")
	}
	return content
}

// applyHeader returns the body of a file block. Formats without comments pass
// through unchanged. Otherwise stale headers are stripped and a fresh header is
// prepended unless the file already declared its own path near the top.
func applyHeader(content, rel string, style *commentStyle) string {
	if style == nil {
		return content
	}
	declared := hasHeader(content, rel)
	cleaned := stripHeaders(content)
	if declared {
		return cleaned
	}
	return style.header(rel) + "\n\n" + cleaned
}

// formatBlock wraps a body in the banner that introduces each file.
func formatBlock(rel, body string) string {
	return strings.Join([]string{
		hashBanner,
		"# File: " + rel,
		hashBanner + "\n",
		body,
		"\n\n" + equalBanner + "\n\n",
	}, "\n")
}

// formatErrorBlock is the block emitted in place of a file that could not be read.
func formatErrorBlock(rel string, err error) string {
	return strings.Join([]string{
		hashBanner,
		"# File: " + rel,
		hashBanner + "\n",
		"[ERROR: Could not read file content due to: " + err.Error() + "]\n\n",
		equalBanner + "\n\n",
	}, "\n")
}
