package grid

import (
	"sort"

	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/units"
)

// DefaultMergeThreshold is the distance under which two column boundaries
// are coalesced into one unified edge (~0.35 mm).
const DefaultMergeThreshold units.Length = 100

// Builder builds a unified column-boundary list from many tables.
type Builder struct {
	// MergeThreshold controls how close two boundaries must be to merge.
	MergeThreshold units.Length
}

// NewBuilder creates a Builder with the default merge threshold.
func NewBuilder() *Builder {
	return &Builder{MergeThreshold: DefaultMergeThreshold}
}

// BuildUnified unions the column boundaries of all tables into one
// ascending list spanning [0, rightmost offset]. Boundaries within
// MergeThreshold of the previously kept one coalesce; the later offset
// wins. Zero tables yield the single boundary 0.
func (b *Builder) BuildUnified(tables []*model.Table) units.BoundaryList {
	if len(tables) == 0 {
		return units.BoundaryList{0}
	}

	seen := map[units.Length]bool{0: true}
	for _, t := range tables {
		for _, offset := range t.ColumnBoundaries() {
			seen[offset] = true
		}
	}

	offsets := make([]units.Length, 0, len(seen))
	for offset := range seen {
		offsets = append(offsets, offset)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	return b.coalesce(offsets)
}

// coalesce walks ascending offsets, replacing any boundary within the merge
// threshold of the previously kept one. Replacing (rather than averaging)
// keeps every kept boundary equal to some authored offset.
func (b *Builder) coalesce(offsets []units.Length) units.BoundaryList {
	if len(offsets) <= 1 {
		return units.BoundaryList(offsets)
	}

	merged := make(units.BoundaryList, 0, len(offsets))
	merged = append(merged, offsets[0])
	for _, offset := range offsets[1:] {
		if offset-merged[len(merged)-1] <= b.MergeThreshold {
			merged[len(merged)-1] = offset
		} else {
			merged = append(merged, offset)
		}
	}
	return merged
}
