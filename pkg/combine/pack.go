// File: pkg/combine/pack.go
package combine

import (
	"fmt"
	"sort"
)

// Distribute assigns records to numParts parts using the longest-processing-time
// heuristic: records are taken largest first (ties by path) and each goes to
// the currently smallest part (ties to the lowest index). Every part is
// returned, including empty ones.
func Distribute(records []*FileRecord, numParts int) ([]*OutputPart, error) {
	if numParts < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParts, numParts)
	}

	sorted := make([]*FileRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Size != sorted[j].Size {
			return sorted[i].Size > sorted[j].Size
		}
		return sorted[i].Path < sorted[j].Path
	})

	parts := make([]*OutputPart, numParts)
	for i := range parts {
		parts[i] = &OutputPart{Index: i + 1}
	}

	for _, rec := range sorted {
		target := parts[0]
		for _, p := range parts[1:] {
			if p.Size < target.Size {
				target = p
			}
		}
		target.Records = append(target.Records, rec)
		target.Size += rec.Size
	}
	return parts, nil
}
