// File: pkg/walk/walk.go

// Package walk traverses a project tree once and reports every entry, together
// with its classification, to a callback. Content collection and tree
// rendering are both callbacks over the same traversal, so the admission
// policy is applied in exactly one place.
package walk

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"projectsnap/pkg/classify"
)

// Visit carries per-entry metadata to the callback.
type Visit struct {
	// Root-relative path using forward slashes (e.g., "src/app.py"); "." for the root.
	Path string
	// Filesystem path on the walker's afero.Fs.
	AbsPath string
	// Base name of the entry.
	Name string
	// True when the entry is a directory.
	IsDir bool
	// File size in bytes; 0 for directories.
	Size int64
	// Outcome of the classifier. The root is always admitted.
	Decision classify.Decision
	// True when the directory resolves to a path that was already visited.
	Loop bool
	// Listing error for a directory whose contents could not be read.
	Err error
}

// Admitted reports whether the entry takes part in the snapshot.
func (v Visit) Admitted() bool {
	return !v.Decision.Excluded && !v.Loop && v.Err == nil
}

// VisitFunc is invoked for every entry in traversal order. Returning an error
// stops the walk.
type VisitFunc func(v Visit) error

// Chain fans a single traversal out to several callbacks, in order.
func Chain(fns ...VisitFunc) VisitFunc {
	return func(v Visit) error {
		for _, fn := range fns {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Walker performs the traversal.
type Walker struct {
	fs         afero.Fs
	classifier *classify.Classifier
	resolve    func(string) (string, error)
	logger     *zap.Logger
}

// New creates a Walker. Symbolic links are resolved with the OS when fs is an
// OS filesystem; other filesystems compare cleaned paths.
func New(fs afero.Fs, classifier *classify.Classifier, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	resolve := func(p string) (string, error) { return filepath.Clean(p), nil }
	if _, ok := fs.(*afero.OsFs); ok {
		resolve = filepath.EvalSymlinks
	}
	return &Walker{fs: fs, classifier: classifier, resolve: resolve, logger: logger}
}

// Walk visits root and everything beneath it that survives pruning.
//
// Order is pre-order. Inside each directory the files come first, sorted by
// name, followed by the subdirectories, sorted by name, each fully walked
// before the next. Pruned directories are reported but never entered.
func (w *Walker) Walk(root string, fn VisitFunc) error {
	info, err := w.fs.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", root)
	}

	entries, err := afero.ReadDir(w.fs, root)
	if err != nil {
		return fmt.Errorf("failed to list root %s: %w", root, err)
	}

	state := &walkState{seen: make(map[string]struct{}), fn: fn}
	if canonical, err := w.resolve(root); err == nil {
		state.seen[canonical] = struct{}{}
	}

	rootVisit := Visit{Path: ".", AbsPath: root, Name: filepath.Base(root), IsDir: true}
	if err := fn(rootVisit); err != nil {
		return err
	}
	return w.walkEntries(state, ".", root, entries)
}

type walkState struct {
	seen map[string]struct{}
	fn   VisitFunc
}

// walkEntries reports the files of one directory, then descends into its subdirectories.
func (w *Walker) walkEntries(state *walkState, rel, abs string, entries []os.FileInfo) error {
	var dirs []os.FileInfo

	for _, entry := range entries {
		entryAbs := filepath.Join(abs, entry.Name())
		info, err := w.follow(entryAbs, entry)
		if err != nil {
			w.logger.Warn("Skipping unresolvable entry", zap.String("path", entryAbs), zap.Error(err))
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, info)
			continue
		}
		if !info.Mode().IsRegular() {
			w.logger.Debug("Skipping non-regular file", zap.String("path", entryAbs))
			continue
		}

		entryRel := joinRel(rel, entry.Name())
		decision := w.classifier.AdmitFile(entryRel, info.Size())
		if decision.Excluded {
			w.logger.Debug("Skipping file",
				zap.String("path", entryRel),
				zap.Stringer("reason", decision.Reason),
				zap.String("detail", decision.Detail))
		}
		v := Visit{Path: entryRel, AbsPath: entryAbs, Name: entry.Name(), Size: info.Size(), Decision: decision}
		if err := state.fn(v); err != nil {
			return err
		}
	}

	for _, dir := range dirs {
		if err := w.walkDir(state, joinRel(rel, dir.Name()), filepath.Join(abs, dir.Name()), dir.Name()); err != nil {
			return err
		}
	}
	return nil
}

// walkDir classifies one subdirectory and, unless pruned or already seen, descends into it.
func (w *Walker) walkDir(state *walkState, rel, abs, name string) error {
	v := Visit{Path: rel, AbsPath: abs, Name: name, IsDir: true}

	v.Decision = w.classifier.PruneDir(rel)
	if v.Decision.Excluded {
		w.logger.Debug("Pruning directory",
			zap.String("path", rel),
			zap.Stringer("reason", v.Decision.Reason),
			zap.String("detail", v.Decision.Detail))
		return state.fn(v)
	}

	canonical, err := w.resolve(abs)
	if err != nil {
		canonical = abs
	}
	if _, dup := state.seen[canonical]; dup {
		w.logger.Warn("Symlink loop or duplicate directory", zap.String("path", rel), zap.String("target", canonical))
		v.Loop = true
		return state.fn(v)
	}
	state.seen[canonical] = struct{}{}

	entries, err := afero.ReadDir(w.fs, abs)
	if err != nil {
		w.logger.Warn("Could not list directory", zap.String("path", rel), zap.Error(err))
		v.Err = err
		return state.fn(v)
	}

	if err := state.fn(v); err != nil {
		return err
	}
	return w.walkEntries(state, rel, abs, entries)
}

// follow returns the FileInfo of the symlink target for links, and the entry itself otherwise.
func (w *Walker) follow(abs string, entry os.FileInfo) (os.FileInfo, error) {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry, nil
	}
	info, err := w.fs.Stat(abs)
	if err != nil {
		return nil, err
	}
	return named{FileInfo: info, name: entry.Name()}, nil
}

// named keeps the link's own name on the target's FileInfo.
type named struct {
	os.FileInfo
	name string
}

func (n named) Name() string { return n.name }

func joinRel(parent, name string) string {
	if parent == "." || parent == "" {
		return name
	}
	return path.Join(parent, name)
}
