package combine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"projectsnap/pkg/rules"
)

// faultyFs refuses reads of failOpen and writes of failWrite.
type faultyFs struct {
	afero.Fs
	failOpen  string
	failWrite string
}

func (f faultyFs) Open(name string) (afero.File, error) {
	if f.failOpen != "" && filepath.Clean(name) == f.failOpen {
		return nil, os.ErrPermission
	}
	return f.Fs.Open(name)
}

func (f faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.failWrite != "" && filepath.Clean(name) == f.failWrite {
		return nil, os.ErrPermission
	}
	return f.Fs.OpenFile(name, flag, perm)
}

type countingProgress struct {
	added    int
	finished bool
}

func (p *countingProgress) Add(n int) error {
	p.added += n
	return nil
}

func (p *countingProgress) Finish() error {
	p.finished = true
	return nil
}

func writeProject(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join("/proj", filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func exampleProject(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	writeProject(t, fs, map[string]string{
		"app.py":              "print('hi')\n",
		"vendor/big.js":       "var big = 1;\n",
		"node_modules/x/y.js": "module.exports = {};\n",
		"README.md":           strings.Repeat("line\n", 3000),
	})
	return fs
}

func readPart(t *testing.T, fs afero.Fs, part int) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join("/proj", rules.OutputName(part)))
	require.NoError(t, err)
	return string(data)
}

func TestRun(t *testing.T) {
	fs := exampleProject(t)
	progress := &countingProgress{}
	opts := Options{
		Fs:       fs,
		Clock:    clockwork.NewFakeClockAt(generatedAt),
		Progress: func(total int) Progress { return progress },
	}

	report, err := Run(Arguments{Root: "/proj", Parts: 2, SelfName: "projectsnap"}, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, "/proj", report.Root)
	assert.Equal(t, 2, report.Stats.Processed)
	assert.Equal(t, 1, report.Stats.PrunedNodeModules)
	assert.Equal(t, 1, report.Stats.PrunedDirs)
	assert.Equal(t, 0, report.Stats.ReadErrors)
	assert.Len(t, report.Outputs, 2)
	assert.NoError(t, report.WriteErr)
	assert.Equal(t, 2, progress.added)
	assert.True(t, progress.finished)

	require.Len(t, report.Parts, 2)
	assert.Equal(t, []string{"README.md"}, partPaths(report.Parts[0]))
	assert.Equal(t, []string{"app.py"}, partPaths(report.Parts[1]))

	part1 := readPart(t, fs, 1)
	part2 := readPart(t, fs, 2)

	for _, doc := range []string{part1, part2} {
		assert.Contains(t, doc, "## Part 1 (1 files):\n  - README.md")
		assert.Contains(t, doc, "## Part 2 (1 files):\n  - app.py")
		assert.NotContains(t, doc, "y.js")
		assert.NotContains(t, doc, "var big")
	}

	assert.Contains(t, part1, "# Concatenated Project Code - Part 1 of 2\n# Generated: 2024-05-06 07:08:09\n# Root Directory: /proj\n")
	assert.Contains(t, part1, "# Directory Structure")
	assert.Contains(t, part1, "├── README.md (14.6 KB, .md)\n├── app.py (12 B, .py)\n└── [EXCLUDED] 2 items: node_modules (venv/node_modules), vendor (excluded dir)")
	assert.Contains(t, part1, "<!-- \nFile: README.md\n -->\n\nline\nline")
	assert.NotContains(t, part1, "node_modules/")

	assert.NotContains(t, part2, "# Directory Structure")
	hash := strings.Repeat("#", 80)
	assert.Contains(t, part2, hash+"\n# File: app.py\n"+hash+"\n\n# File: app.py\n\nprint('hi')\n\n\n"+strings.Repeat("=", 80))
}

func TestRunIgnoresItsOwnOutput(t *testing.T) {
	fs := exampleProject(t)
	opts := Options{Fs: fs, Clock: clockwork.NewFakeClockAt(generatedAt)}
	args := Arguments{Root: "/proj", Parts: 2, SelfName: "projectsnap"}

	_, err := Run(args, opts, nil)
	require.NoError(t, err)
	first := readPart(t, fs, 2)

	report, err := Run(args, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Stats.Processed)
	assert.Equal(t, first, readPart(t, fs, 2))
	assert.Equal(t, 1, strings.Count(readPart(t, fs, 1), "# Concatenated Project Code"))
	assert.Contains(t, readPart(t, fs, 1), "concatenated_scripts_part1.txt (excluded file)")
}

func TestRunWritesEmptyParts(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o755))

	report, err := Run(Arguments{Root: "/proj", Parts: 3}, Options{Fs: fs, Clock: clockwork.NewFakeClockAt(generatedAt)}, nil)
	require.NoError(t, err)

	assert.Len(t, report.Outputs, 3)
	for i := 1; i <= 3; i++ {
		doc := readPart(t, fs, i)
		assert.Contains(t, doc, "## Part 1 (0 files):")
		assert.Contains(t, doc, "## Part 3 (0 files):")
	}
}

func TestRunRejectsInvalidParts(t *testing.T) {
	fs := exampleProject(t)

	_, err := Run(Arguments{Root: "/proj", Parts: 0}, Options{Fs: fs}, nil)
	assert.ErrorIs(t, err, ErrInvalidParts)

	exists, _ := afero.Exists(fs, "/proj/concatenated_scripts_part1.txt")
	assert.False(t, exists)
}

func TestRunMissingRoot(t *testing.T) {
	_, err := Run(Arguments{Root: "/nowhere", Parts: 1}, Options{Fs: afero.NewMemMapFs()}, nil)
	assert.Error(t, err)
}

func TestRunUnreadableFileBecomesErrorBlock(t *testing.T) {
	base := exampleProject(t)
	fs := faultyFs{Fs: base, failOpen: "/proj/app.py"}
	core, logs := observer.New(zapcore.WarnLevel)

	report, err := Run(Arguments{Root: "/proj", Parts: 1}, Options{Fs: fs, Clock: clockwork.NewFakeClockAt(generatedAt)}, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Stats.Processed)
	assert.Equal(t, 1, report.Stats.ReadErrors)
	assert.Contains(t, readPart(t, base, 1), "# File: app.py\n"+strings.Repeat("#", 80)+"\n\n[ERROR: Could not read file content due to: permission denied]")
	assert.Equal(t, 1, logs.FilterMessage("Failed to read file").Len())
}

func TestRunReportsWriteFailures(t *testing.T) {
	base := exampleProject(t)
	fs := faultyFs{Fs: base, failWrite: "/proj/concatenated_scripts_part1.txt"}

	report, err := Run(Arguments{Root: "/proj", Parts: 2}, Options{Fs: fs, Clock: clockwork.NewFakeClockAt(generatedAt)}, nil)

	require.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, []string{"/proj/concatenated_scripts_part2.txt"}, report.Outputs)
	assert.Error(t, report.WriteErr)
}
