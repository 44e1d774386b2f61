package placer

import (
	"github.com/tsawler/gridplan/grid"
	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/units"
)

// Result is the outcome of placing one table.
type Result struct {
	Placements []model.Placement

	// RowsUsed is the number of destination rows the table consumed,
	// so callers can stack tables below one another.
	RowsUsed int

	// RowHeights holds one height hint per destination row consumed.
	RowHeights []units.Length

	// ColWidths holds local destination column widths. It is set only in
	// nested mode, where the table does not sit on the unified grid.
	ColWidths []units.Length

	// Secondary lists nested links that could not be placed inline
	// (several children sharing one parent cell). Never silently dropped.
	Secondary []model.NestedLink

	Warnings []model.Warning
}

// PlaceBase places a table in base mode: one placement per cell, rows
// passing through unchanged, destination column spans recomputed from the
// mapping. Cells whose anchor column has no mapping are dropped with a
// warning; the rest of the table still places.
func PlaceBase(t *model.Table, tableIndex int, mapping grid.ColumnMapping, startRow int) Result {
	res := Result{
		RowsUsed:   t.RowCount,
		RowHeights: t.RowHeights(),
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

		res.Placements = append(res.Placements, model.Placement{
			DestRow: startRow + cell.Row,
			DestCol: dest.Start,
			RowSpan: cell.RowSpan,
			ColSpan: colSpan,
			Text:    cell.Text(),
			Cell:    cell,
			Table:   tableIndex,
			Parent:  -1,
			Edges:   ParagraphEdges(0, 1),
		})
	}

	return res
}
