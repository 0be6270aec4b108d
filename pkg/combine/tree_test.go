package combine

import (
	"errors"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectsnap/pkg/classify"
	"projectsnap/pkg/walk"
)

func dirVisit(p string) walk.Visit {
	return walk.Visit{Path: p, Name: path.Base(p), IsDir: true}
}

func fileVisit(p string, size int64) walk.Visit {
	return walk.Visit{Path: p, Name: path.Base(p), Size: size}
}

func excluded(v walk.Visit, reason classify.Reason) walk.Visit {
	v.Decision = classify.Decision{Excluded: true, Reason: reason}
	return v
}

func render(t *testing.T, visits ...walk.Visit) []string {
	t.Helper()
	b := NewTreeBuilder()
	for _, v := range visits {
		require.NoError(t, b.Visit(v))
	}
	lines := strings.Split(b.Render(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "# Directory Structure", lines[0])
	assert.Equal(t, strings.Repeat("#", 80), lines[1])
	return lines[2:]
}

func TestTreeRender(t *testing.T) {
	lines := render(t,
		dirVisit("."),
		fileVisit("app.py", 120),
		excluded(fileVisit("notes.txt", 10), classify.DisallowedType),
		excluded(dirVisit("node_modules"), classify.EnvRoot),
		dirVisit("src"),
		fileVisit("src/main.py", 2048),
		excluded(dirVisit("vendor"), classify.ExcludedDir),
	)

	assert.Equal(t, []string{
		"├── app.py (120 B, .py)",
		"├── src/",
		"│   └── main.py (2.0 KB, .py)",
		"└── [EXCLUDED] 3 items: node_modules (venv/node_modules), notes.txt (disallowed type), vendor (excluded dir)",
	}, lines)
}

func TestTreeRenderSummarizesManyExclusions(t *testing.T) {
	visits := []walk.Visit{dirVisit(".")}
	for _, name := range []string{"e.pyc", "d.pyc", "c.pyc", "b.pyc", "a.pyc"} {
		visits = append(visits, excluded(fileVisit(name, 1), classify.ExcludedPattern))
	}
	locked := dirVisit("locked")
	locked.Err = errors.New("permission denied")
	loop := dirVisit("loop")
	loop.Loop = true
	visits = append(visits, locked, loop)

	assert.Equal(t, []string{
		"├── locked/",
		"│   [ERROR] Cannot access directory: permission denied",
		"├── loop/",
		"│   [WARN] Symlink loop or duplicate processing: loop",
		"└── [EXCLUDED] 5 items: a.pyc (excluded pattern), b.pyc (excluded pattern), c.pyc (excluded pattern)",
		"    ... and 2 more excluded items",
	}, render(t, visits...))
}

func TestTreeRenderNested(t *testing.T) {
	lines := render(t,
		dirVisit("."),
		fileVisit("Dockerfile", 0),
		dirVisit("a"),
		dirVisit("a/b"),
		fileVisit("a/b/c.ts", 3),
		excluded(fileVisit("a/b/c.test.ts", 3), classify.ExcludedPattern),
		fileVisit("z.md", 5),
	)

	assert.Equal(t, []string{
		"├── Dockerfile (0 B, no ext)",
		"├── a/",
		"│   └── b/",
		"│       ├── c.ts (3 B, .ts)",
		"│       └── [EXCLUDED] 1 items: c.test.ts (excluded pattern)",
		"└── z.md (5 B, .md)",
	}, lines)
}

func TestTreeRenderEmptyProject(t *testing.T) {
	assert.Empty(t, render(t, dirVisit(".")))
}

func TestTreeVisitRequiresParent(t *testing.T) {
	b := NewTreeBuilder()
	require.NoError(t, b.Visit(dirVisit(".")))

	assert.Error(t, b.Visit(fileVisit("missing/x.py", 1)))
}
