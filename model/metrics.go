package model

import "github.com/tsawler/gridplan/units"

// ColumnWidths derives per-column widths from the table's cells. A cell's
// authored width is divided evenly across the columns its span covers; the
// first cell to cover a column decides its width. Columns no cell sized get
// an even share of the table's overall width.
func (t *Table) ColumnWidths() []units.Length {
	if t.ColCount == 0 {
		return nil
	}

	widths := make([]units.Length, t.ColCount)
	for i := range t.Cells {
		c := &t.Cells[i]
		if c.Width <= 0 {
			continue
		}
		per := c.Width / units.Length(c.ColSpan)
		for j := 0; j < c.ColSpan; j++ {
			col := c.Col + j
			if col < t.ColCount && widths[col] == 0 {
				widths[col] = per
			}
		}
	}

	if t.Width > 0 {
		fallback := t.Width / units.Length(t.ColCount)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = fallback
			}
		}
	}

	return widths
}

// RowHeights derives per-row heights the same way ColumnWidths derives
// column widths.
func (t *Table) RowHeights() []units.Length {
	if t.RowCount == 0 {
		return nil
	}

	heights := make([]units.Length, t.RowCount)
	for i := range t.Cells {
		c := &t.Cells[i]
		if c.Height <= 0 {
			continue
		}
		per := c.Height / units.Length(c.RowSpan)
		for j := 0; j < c.RowSpan; j++ {
			row := c.Row + j
			if row < t.RowCount && heights[row] == 0 {
				heights[row] = per
			}
		}
	}

	if t.Height > 0 {
		fallback := t.Height / units.Length(t.RowCount)
		for i := range heights {
			if heights[i] == 0 {
				heights[i] = fallback
			}
		}
	}

	return heights
}

// ColumnBoundaries returns the table's own column-edge offsets as cumulative
// column widths starting at 0.
func (t *Table) ColumnBoundaries() units.BoundaryList {
	widths := t.ColumnWidths()
	boundaries := make(units.BoundaryList, 0, len(widths)+1)
	boundaries = append(boundaries, 0)
	var x units.Length
	for _, w := range widths {
		x += w
		boundaries = append(boundaries, x)
	}
	return boundaries
}
