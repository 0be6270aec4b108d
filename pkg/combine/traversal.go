// File: pkg/combine/traversal.go
package combine

import (
	"go.uber.org/zap"

	"projectsnap/pkg/classify"
	"projectsnap/pkg/rules"
	"projectsnap/pkg/walk"
)

// selection gathers the admitted file paths of a traversal, in traversal
// order, and counts what was left out.
type selection struct {
	paths  []string
	stats  *Stats
	logger *zap.Logger
}

func newSelection(stats *Stats, logger *zap.Logger) *selection {
	return &selection{stats: stats, logger: logger}
}

// Visit is a walk.VisitFunc.
func (s *selection) Visit(v walk.Visit) error {
	switch {
	case v.Path == ".":
	case v.IsDir:
		s.countDir(v)
	case v.Admitted():
		s.paths = append(s.paths, v.Path)
		s.logger.Debug("Added file to processing list", zap.String("path", v.Path))
	default:
		s.stats.Skipped++
	}
	return nil
}

func (s *selection) countDir(v walk.Visit) {
	switch {
	case v.Loop:
		s.stats.Loops++
	case v.Err != nil:
		s.stats.ListingErrors++
	case !v.Decision.Excluded:
	case v.Decision.Reason != classify.EnvRoot:
		s.stats.PrunedDirs++
	case v.Name == rules.DependencyDir:
		s.stats.PrunedNodeModules++
	default:
		s.stats.PrunedEnvDirs++
	}
}
