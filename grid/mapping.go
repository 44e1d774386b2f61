package grid

import (
	"github.com/tsawler/gridplan/units"
)

// DefaultMatchTolerance is the distance under which a table boundary is
// considered to match a unified boundary (~0.7 mm). It is deliberately
// looser than the merge threshold.
const DefaultMatchTolerance units.Length = 200

// ColRange is a half-open destination range [Start, End) of unified column
// indices; End is the boundary index closing the range, always > Start.
type ColRange struct {
	Start, End int
}

// ColumnMapping maps a table's source column index to its destination range
// in the unified grid. Columns with no entry could not be matched within
// tolerance and are excluded.
type ColumnMapping map[int]ColRange

// Span returns the number of unified columns the source range
// [col, col+colSpan) covers, recomputed from the mapping rather than copied
// from the source. The second result is false when either end of the range
// is unmapped.
func (m ColumnMapping) Span(col, colSpan int) (int, bool) {
	start, ok := m[col]
	if !ok {
		return 0, false
	}
	last, ok := m[col+colSpan-1]
	if !ok {
		// Authored span runs into unmapped columns; fall back to the
		// anchor column's own range.
		last = start
	}
	return last.End - start.Start, true
}

// Mapper maps one table's boundaries onto the unified grid.
type Mapper struct {
	// MatchTolerance is the maximum distance for a boundary match.
	MatchTolerance units.Length
}

// NewMapper creates a Mapper with the default match tolerance.
func NewMapper() *Mapper {
	return &Mapper{MatchTolerance: DefaultMatchTolerance}
}

// MapColumns maps each local column segment [i, i+1) onto the unified
// boundary indices nearest its two endpoints. A segment whose endpoints are
// not both within tolerance of some unified boundary is left out of the
// mapping entirely, neither coalesced into a neighbor nor stretched.
func (m *Mapper) MapColumns(local, unified units.BoundaryList) ColumnMapping {
	mapping := make(ColumnMapping)
	if len(local) < 2 || len(unified) == 0 {
		return mapping
	}

	for col := 0; col < len(local)-1; col++ {
		start := m.nearest(unified, local[col])
		end := m.nearest(unified, local[col+1])
		if start >= 0 && end >= 0 && end > start {
			mapping[col] = ColRange{Start: start, End: end}
		}
	}
	return mapping
}

// nearest returns the index of the unified boundary closest to x, or -1 if
// the closest one is farther than the match tolerance.
func (m *Mapper) nearest(unified units.BoundaryList, x units.Length) int {
	best := -1
	var bestDiff units.Length
	for i, b := range unified {
		diff := b - x
		if diff < 0 {
			diff = -diff
		}
		if best < 0 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	if bestDiff > m.MatchTolerance {
		return -1
	}
	return best
}
