package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"projectsnap/pkg/combine"
	"projectsnap/pkg/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetErr(out)
	RootCmd.SetArgs(args)
	err := Execute(zap.NewNop())
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Get().Version+"\n", out)
}

func TestVersionFull(t *testing.T) {
	out, err := execute(t, "version", "--short=false")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", out)
}

func TestRootTakesSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte("print(1)\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("todo\n"), 0o644))

	out, err := execute(t, "--root", dir, "--parts", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Processed 1 files")
	assert.Contains(t, out, "Part 1: 1 files")
	assert.Contains(t, out, "Part 2: 0 files, 0 B -> concatenated_scripts_part2.txt")

	for _, name := range []string{"concatenated_scripts_part1.txt", "concatenated_scripts_part2.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dir, "concatenated_scripts_part3.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRootRejectsZeroParts(t *testing.T) {
	_, err := execute(t, "--root", t.TempDir(), "--parts", "0")
	assert.ErrorIs(t, err, combine.ErrInvalidParts)
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "--root", t.TempDir(), "--parts", "1", "extra")
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	report := &combine.Report{
		Root: "/proj",
		Parts: []*combine.OutputPart{
			{Index: 1, Records: []*combine.FileRecord{{Path: "a.py"}}, Size: 2048},
			{Index: 2},
		},
		Outputs:  []string{"/proj/concatenated_scripts_part1.txt"},
		Stats:    combine.Stats{Processed: 1, Skipped: 4, PrunedEnvDirs: 1, PrunedNodeModules: 2, ReadErrors: 1},
		WriteErr: errors.New("part 2: permission denied"),
	}

	out := &bytes.Buffer{}
	printSummary(out, report)

	assert.Equal(t, strings.Join([]string{
		"Snapshot of /proj",
		"  Processed 1 files",
		"  1 files could not be read",
		"  Skipped 4 files, 1 virtual environments, 2 node_modules directories",
		"  Part 1: 1 files, 2.0 KB -> concatenated_scripts_part1.txt",
		"  Part 2: 0 files, 0 B -> concatenated_scripts_part2.txt",
		"  Write errors: part 2: permission denied",
		"",
	}, "\n"), out.String())
}
