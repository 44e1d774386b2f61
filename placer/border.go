package placer

import "github.com/tsawler/gridplan/model"

// ParagraphEdges resolves the border roles for one placement piece of a
// cell split into total paragraph rows. The vertical sides always show the
// authored border; horizontal seams between paragraph pieces are suppressed
// so the split reads as one cell.
func ParagraphEdges(paraIdx, total int) model.Edges {
	e := model.Edges{
		Top:    model.EdgeAuthored,
		Bottom: model.EdgeAuthored,
		Left:   model.EdgeAuthored,
		Right:  model.EdgeAuthored,
	}
	if total <= 1 {
		return e
	}
	if paraIdx > 0 {
		e.Top = model.EdgeSuppressed
	}
	if paraIdx < total-1 {
		e.Bottom = model.EdgeSuppressed
	}
	return e
}

// NestedEdges resolves border roles for a cell of an inlined nested table.
// Edges on the child's outer boundary inherit the parent cell's border so
// the child blends into the parent frame; interior edges take the nested
// (dashed) treatment.
func NestedEdges(cell *model.Cell, rowCount, colCount int) model.Edges {
	e := model.Edges{
		Top:    model.EdgeNested,
		Bottom: model.EdgeNested,
		Left:   model.EdgeNested,
		Right:  model.EdgeNested,
	}
	if cell == nil {
		return e
	}
	if cell.Row == 0 {
		e.Top = model.EdgeInherited
	}
	if cell.Row+cell.RowSpan >= rowCount {
		e.Bottom = model.EdgeInherited
	}
	if cell.Col == 0 {
		e.Left = model.EdgeInherited
	}
	if cell.Col+cell.ColSpan >= colCount {
		e.Right = model.EdgeInherited
	}
	return e
}
