package placer

import (
	"github.com/tsawler/gridplan/grid"
	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/units"
)

// SplitPlan describes how a table's rows expand when every paragraph gets
// its own destination row.
type SplitPlan struct {
	// MaxParas is the largest paragraph count among cells anchored at
	// each source row, never less than 1.
	MaxParas []int

	// Offsets maps a source row to its destination start offset:
	// Offsets[r+1] = Offsets[r] + MaxParas[r]. Length RowCount+1, so
	// Offsets[RowCount] is the total destination row count.
	Offsets []int

	// RowHeights holds one height per destination row: the tallest
	// paragraph any cell contributes at that paragraph offset. Rows that
	// do not split keep their authored height.
	RowHeights []units.Length
}

// TotalRows returns the number of destination rows the plan produces.
func (p SplitPlan) TotalRows() int {
	if len(p.Offsets) == 0 {
		return 0
	}
	return p.Offsets[len(p.Offsets)-1]
}

// PlanRowSplit computes the row expansion for paragraph-split placement.
func PlanRowSplit(t *model.Table) SplitPlan {
	plan := SplitPlan{
		MaxParas: make([]int, t.RowCount),
		Offsets:  make([]int, t.RowCount+1),
	}
	for r := range plan.MaxParas {
		plan.MaxParas[r] = 1
	}

	// Tallest paragraph per (source row, paragraph offset).
	paraHeights := make([][]units.Length, t.RowCount)
	for i := range t.Cells {
		cell := &t.Cells[i]
		if cell.Row < 0 || cell.Row >= t.RowCount {
			continue
		}
		if n := cell.ParagraphCount(); n > plan.MaxParas[cell.Row] {
			plan.MaxParas[cell.Row] = n
		}
		for p, para := range cell.Paragraphs {
			for len(paraHeights[cell.Row]) <= p {
				paraHeights[cell.Row] = append(paraHeights[cell.Row], 0)
			}
			if para.Height > paraHeights[cell.Row][p] {
				paraHeights[cell.Row][p] = para.Height
			}
		}
	}

	for r := 0; r < t.RowCount; r++ {
		plan.Offsets[r+1] = plan.Offsets[r] + plan.MaxParas[r]
	}

	authored := t.RowHeights()
	plan.RowHeights = make([]units.Length, plan.TotalRows())
	for r := 0; r < t.RowCount; r++ {
		if plan.MaxParas[r] == 1 {
			// Unsplit rows keep their authored height, matching base mode.
			if r < len(authored) {
				plan.RowHeights[plan.Offsets[r]] = authored[r]
			}
			continue
		}
		for p := 0; p < plan.MaxParas[r]; p++ {
			if p < len(paraHeights[r]) {
				plan.RowHeights[plan.Offsets[r]+p] = paraHeights[r][p]
			}
		}
	}

	return plan
}

// destRowSpan returns the full destination row span of a cell under the
// plan: the sum of MaxParas over every source row the cell's span covers.
func (p SplitPlan) destRowSpan(row, rowSpan int) int {
	span := 0
	for r := row; r < row+rowSpan && r < len(p.MaxParas); r++ {
		span += p.MaxParas[r]
	}
	return span
}

// PlaceSplit places a table in paragraph-split mode. A cell with p
// paragraphs occupies p destination rows, one paragraph each; the first
// p-1 rows span horizontally only, while the p-th absorbs the remaining
// destination rows vertically. Earlier paragraphs stay visually distinct
// and no unmerged filler rows appear below the cell.
func PlaceSplit(t *model.Table, tableIndex int, mapping grid.ColumnMapping, startRow int) Result {
	plan := PlanRowSplit(t)
	res := Result{
		RowsUsed:   plan.TotalRows(),
		RowHeights: plan.RowHeights,
	}

	for i := range t.Cells {
		cell := &t.Cells[i]

		dest, ok := mapping[cell.Col]
		if !ok {
			res.Warnings = append(res.Warnings, model.Warningf(
				model.WarnMappingGap, tableIndex, cell.Row, cell.Col,
				"cell (%d,%d) dropped: column %d has no unified counterpart",
				cell.Row, cell.Col, cell.Col))
			continue
		}
		colSpan, _ := mapping.Span(cell.Col, cell.ColSpan)

		cellStart := startRow + plan.Offsets[cell.Row]
		fullSpan := plan.destRowSpan(cell.Row, cell.RowSpan)
		paras := cell.ParagraphCount()

		if paras == 1 {
			// Single merge over the whole rectangle, as in base mode.
			res.Placements = append(res.Placements, model.Placement{
				DestRow: cellStart,
				DestCol: dest.Start,
				RowSpan: fullSpan,
				ColSpan: colSpan,
				Text:    cell.Text(),
				Cell:    cell,
				Table:   tableIndex,
				Parent:  -1,
				Edges:   ParagraphEdges(0, 1),
			})
			continue
		}

		for p := 0; p < paras; p++ {
			rowSpan := 1
			if p == paras-1 {
				// The last paragraph absorbs surplus rows from the
				// authored row span.
				rowSpan = fullSpan - (paras - 1)
			}
			res.Placements = append(res.Placements, model.Placement{
				DestRow: cellStart + p,
				DestCol: dest.Start,
				RowSpan: rowSpan,
				ColSpan: colSpan,
				Text:    cell.Paragraphs[p].Text,
				Cell:    cell,
				Table:   tableIndex,
				Para:    p,
				Parent:  -1,
				Edges:   ParagraphEdges(p, paras),
			})
		}
	}

	return res
}
