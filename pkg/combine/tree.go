// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/c2h5oh/datasize"

	"projectsnap/pkg/walk"
)

// excludedNamed is how many excluded siblings are listed by name before the rest are counted.
const excludedNamed = 3

type treeNode struct {
	visit    walk.Visit
	children []*treeNode
}

// TreeBuilder records a traversal and renders it as an annotated ASCII tree.
// Its Visit method is a walk.VisitFunc.
type TreeBuilder struct {
	root  *treeNode
	nodes map[string]*treeNode
}

// NewTreeBuilder creates an empty TreeBuilder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{nodes: make(map[string]*treeNode)}
}

// Visit adds one entry to the tree.
func (b *TreeBuilder) Visit(v walk.Visit) error {
	node := &treeNode{visit: v}
	if v.Path == "." {
		b.root = node
		b.nodes["."] = node
		return nil
	}

	parent, ok := b.nodes[path.Dir(v.Path)]
	if !ok {
		return fmt.Errorf("tree: entry %s visited before its parent", v.Path)
	}
	parent.children = append(parent.children, node)
	if v.IsDir {
		b.nodes[v.Path] = node
	}
	return nil
}

// Render returns the "Directory Structure" section. The root itself gets no line.
func (b *TreeBuilder) Render() string {
	lines := []string{"# Directory Structure", hashBanner}
	if b.root != nil {
		lines = renderDir(lines, b.root, "")
	}
	return strings.Join(lines, "\n")
}

func renderDir(lines []string, dir *treeNode, prefix string) []string {
	switch {
	case dir.visit.Loop:
		return append(lines, prefix+"[WARN] Symlink loop or duplicate processing: "+dir.visit.Path)
	case dir.visit.Err != nil:
		return append(lines, prefix+"[ERROR] Cannot access directory: "+dir.visit.Err.Error())
	}

	children := make([]*treeNode, len(dir.children))
	copy(children, dir.children)
	sort.Slice(children, func(i, j int) bool {
		return children[i].visit.Name < children[j].visit.Name
	})

	var shown, excluded []*treeNode
	for _, child := range children {
		if child.visit.Decision.Excluded {
			excluded = append(excluded, child)
		} else {
			shown = append(shown, child)
		}
	}

	for i, child := range shown {
		connector, extension := "├── ", "│   "
		if i == len(shown)-1 && len(excluded) == 0 {
			connector, extension = "└── ", "    "
		}

		if child.visit.IsDir {
			lines = append(lines, prefix+connector+child.visit.Name+"/")
			lines = renderDir(lines, child, prefix+extension)
			continue
		}
		lines = append(lines, prefix+connector+child.visit.Name+fileInfo(child.visit))
	}

	if len(excluded) > 0 {
		named := make([]string, 0, excludedNamed)
		for _, child := range excluded[:min(len(excluded), excludedNamed)] {
			named = append(named, fmt.Sprintf("%s (%s)", child.visit.Name, child.visit.Decision.Reason))
		}
		lines = append(lines, fmt.Sprintf("%s└── [EXCLUDED] %d items: %s", prefix, len(excluded), strings.Join(named, ", ")))
		if rest := len(excluded) - excludedNamed; rest > 0 {
			lines = append(lines, fmt.Sprintf("%s    ... and %d more excluded items", prefix, rest))
		}
	}
	return lines
}

// fileInfo annotates a file with its human-readable size and extension.
func fileInfo(v walk.Visit) string {
	ext := strings.ToLower(filepath.Ext(v.Name))
	if ext == "" {
		ext = "no ext"
	}
	return fmt.Sprintf(" (%s, %s)", datasize.ByteSize(v.Size).HumanReadable(), ext)
}
