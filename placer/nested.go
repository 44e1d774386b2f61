package placer

import (
	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/units"
)

// InlineChild is a nested table selected for inline placement inside its
// parent cell.
type InlineChild struct {
	Link  model.NestedLink
	Child *model.Table
}

// Expansion describes how a parent table's destination grid grows to host
// its nested tables.
type Expansion struct {
	// RowExtra/ColExtra hold the extra destination rows/columns inserted
	// at each source row/column. When several children affect the same
	// row or column the largest requirement wins; requirements are never
	// summed, so co-located children do not double-inflate shared slots.
	RowExtra, ColExtra []int

	// RowMap/ColMap map a source index to its destination start offset:
	// map[i+1] = map[i] + 1 + extra[i]. Length count+1.
	RowMap, ColMap []int

	// Inline holds the children placed inline, one per parent cell.
	Inline []InlineChild

	// Secondary lists links that share a parent cell with an earlier
	// link. They need an alternate representation and are reported, not
	// placed.
	Secondary []model.NestedLink
}

// TotalRows returns the expanded destination row count.
func (e Expansion) TotalRows() int {
	if len(e.RowMap) == 0 {
		return 0
	}
	return e.RowMap[len(e.RowMap)-1]
}

// TotalCols returns the expanded destination column count.
func (e Expansion) TotalCols() int {
	if len(e.ColMap) == 0 {
		return 0
	}
	return e.ColMap[len(e.ColMap)-1]
}

func buildOffsetMap(count int, extra []int) []int {
	m := make([]int, count+1)
	for i := 0; i < count; i++ {
		m[i+1] = m[i] + 1 + extra[i]
	}
	return m
}

// PlanNestedExpansion computes the local grid growth needed for the nested
// tables linked into a parent. links must all target parentIndex; tables is
// the document-order table slice the links index into.
func PlanNestedExpansion(parent *model.Table, parentIndex int, links []model.NestedLink, tables []*model.Table) (Expansion, []model.Warning) {
	exp := Expansion{
		RowExtra: make([]int, parent.RowCount),
		ColExtra: make([]int, parent.ColCount),
	}
	var warnings []model.Warning

	claimed := make(map[[2]int]bool)
	for _, link := range links {
		if link.Child < 0 || link.Child >= len(tables) {
			continue
		}
		key := [2]int{link.ParentRow, link.ParentCol}
		if claimed[key] {
			// Only the first child in document order goes inline; the
			// rest need an alternate representation.
			exp.Secondary = append(exp.Secondary, link)
			warnings = append(warnings, model.Warningf(
				model.WarnAmbiguousNesting, parentIndex, link.ParentRow, link.ParentCol,
				"parent cell (%d,%d) already hosts a nested table; table %d needs alternate representation",
				link.ParentRow, link.ParentCol, link.Child))
			continue
		}
		claimed[key] = true

		child := tables[link.Child]
		exp.Inline = append(exp.Inline, InlineChild{Link: link, Child: child})

		spanR, spanC := 1, 1
		if pc := parent.CellAt(link.ParentRow, link.ParentCol); pc != nil {
			spanR, spanC = pc.RowSpan, pc.ColSpan
		}

		if extra := child.RowCount - spanR; extra > 0 && link.ParentRow < parent.RowCount {
			if extra > exp.RowExtra[link.ParentRow] {
				exp.RowExtra[link.ParentRow] = extra
			}
		}
		if extra := child.ColCount - spanC; extra > 0 && link.ParentCol < parent.ColCount {
			if extra > exp.ColExtra[link.ParentCol] {
				exp.ColExtra[link.ParentCol] = extra
			}
		}
	}

	exp.RowMap = buildOffsetMap(parent.RowCount, exp.RowExtra)
	exp.ColMap = buildOffsetMap(parent.ColCount, exp.ColExtra)

	return exp, warnings
}

// spanUnder returns the destination span of an authored span starting at
// index from, summing (1 + extra) over every covered source slot.
func spanUnder(extra []int, from, span int) int {
	total := 0
	for i := from; i < from+span && i < len(extra); i++ {
		total += 1 + extra[i]
	}
	return total
}

// PlaceNested places a parent table with its nested children inlined. The
// parent's own columns (not the unified grid) form the destination axes, so
// the Result carries local column widths.
func PlaceNested(parent *model.Table, parentIndex int, exp Expansion, startRow int) Result {
	res := Result{
		RowsUsed:  exp.TotalRows(),
		Secondary: exp.Secondary,
	}

	nestedAt := make(map[[2]int]InlineChild, len(exp.Inline))
	for _, ic := range exp.Inline {
		nestedAt[[2]int{ic.Link.ParentRow, ic.Link.ParentCol}] = ic
	}

	// Parent cells; the ones hosting an inline child are replaced by the
	// child's own cells below.
	for i := range parent.Cells {
		cell := &parent.Cells[i]
		if _, hosts := nestedAt[[2]int{cell.Row, cell.Col}]; hosts {
			continue
		}

		res.Placements = append(res.Placements, model.Placement{
			DestRow: startRow + exp.RowMap[cell.Row],
			DestCol: exp.ColMap[cell.Col],
			RowSpan: spanUnder(exp.RowExtra, cell.Row, cell.RowSpan),
			ColSpan: spanUnder(exp.ColExtra, cell.Col, cell.ColSpan),
			Text:    cell.Text(),
			Cell:    cell,
			Table:   parentIndex,
			Parent:  -1,
			Edges:   ParagraphEdges(0, 1),
		})
	}

	// Children, anchored at their parent cell's expanded origin.
	for _, ic := range exp.Inline {
		anchorRow := startRow + exp.RowMap[ic.Link.ParentRow]
		anchorCol := exp.ColMap[ic.Link.ParentCol]

		var parentRef string
		if pc := parent.CellAt(ic.Link.ParentRow, ic.Link.ParentCol); pc != nil {
			parentRef = pc.StyleRef
		}

		for j := range ic.Child.Cells {
			cc := &ic.Child.Cells[j]
			res.Placements = append(res.Placements, model.Placement{
				DestRow:    anchorRow + cc.Row,
				DestCol:    anchorCol + cc.Col,
				RowSpan:    cc.RowSpan,
				ColSpan:    cc.ColSpan,
				Text:       cc.Text(),
				Cell:       cc,
				Table:      ic.Link.Child,
				Nested:     true,
				Parent:     parentIndex,
				InheritRef: parentRef,
				Edges:      NestedEdges(cc, ic.Child.RowCount, ic.Child.ColCount),
			})
		}
	}

	res.RowHeights, res.Warnings = nestedRowHeights(parent, parentIndex, exp)

	var colWarnings []model.Warning
	res.ColWidths, colWarnings = nestedColWidths(parent, parentIndex, exp)
	res.Warnings = append(res.Warnings, colWarnings...)

	return res
}

// nestedRowHeights builds destination row heights: unexpanded rows keep the
// parent's authored height; expanded rows take the inlined child's row
// heights, or divide the parent row's extent evenly when the child carries
// no size data.
func nestedRowHeights(parent *model.Table, parentIndex int, exp Expansion) ([]units.Length, []model.Warning) {
	heights := make([]units.Length, exp.TotalRows())
	var warnings []model.Warning

	authored := parent.RowHeights()
	for r := 0; r < parent.RowCount; r++ {
		slots := 1 + exp.RowExtra[r]
		var parentHeight units.Length
		if r < len(authored) {
			parentHeight = authored[r]
		}

		if slots == 1 {
			heights[exp.RowMap[r]] = parentHeight
			continue
		}

		childHeights := childRowHeightsAt(exp, r)
		if childHeights == nil {
			// Degraded but non-fatal: spread the parent extent evenly.
			warnings = append(warnings, model.Warningf(
				model.WarnMissingNestedSize, parentIndex, r, -1,
				"nested table at row %d has no row heights; dividing parent extent evenly", r))
			per := parentHeight / units.Length(slots)
			for s := 0; s < slots; s++ {
				heights[exp.RowMap[r]+s] = per
			}
			continue
		}
		for s := 0; s < slots; s++ {
			if s < len(childHeights) {
				heights[exp.RowMap[r]+s] = childHeights[s]
			}
		}
	}

	return heights, warnings
}

// childRowHeightsAt finds the row heights of an inline child anchored at
// the given parent row, or nil when none carries height data.
func childRowHeightsAt(exp Expansion, row int) []units.Length {
	for _, ic := range exp.Inline {
		if ic.Link.ParentRow != row {
			continue
		}
		hs := ic.Child.RowHeights()
		for _, h := range hs {
			if h > 0 {
				return hs
			}
		}
	}
	return nil
}

func nestedColWidths(parent *model.Table, parentIndex int, exp Expansion) ([]units.Length, []model.Warning) {
	widths := make([]units.Length, exp.TotalCols())
	authored := parent.ColumnWidths()
	var warnings []model.Warning

	for c := 0; c < parent.ColCount; c++ {
		slots := 1 + exp.ColExtra[c]
		var parentWidth units.Length
		if c < len(authored) {
			parentWidth = authored[c]
		}

		if slots == 1 {
			widths[exp.ColMap[c]] = parentWidth
			continue
		}

		childWidths := childColWidthsAt(exp, c)
		if childWidths == nil {
			warnings = append(warnings, model.Warningf(
				model.WarnMissingNestedSize, parentIndex, -1, c,
				"nested table at column %d has no column widths; dividing parent extent evenly", c))
			per := parentWidth / units.Length(slots)
			for s := 0; s < slots; s++ {
				widths[exp.ColMap[c]+s] = per
			}
			continue
		}
		for s := 0; s < slots; s++ {
			if s < len(childWidths) {
				widths[exp.ColMap[c]+s] = childWidths[s]
			}
		}
	}

	return widths, warnings
}

func childColWidthsAt(exp Expansion, col int) []units.Length {
	for _, ic := range exp.Inline {
		if ic.Link.ParentCol != col {
			continue
		}
		ws := ic.Child.ColumnWidths()
		for _, w := range ws {
			if w > 0 {
				return ws
			}
		}
	}
	return nil
}
